/*
Arbitrary-size non-negative integer with set-style bit manipulation.

	w := whole.New()      // [0]{}
	w.Set(3)              // [4]{0001}
	w.SetRange(5, 7)      // [8]{00010111}
	w.Toggle(6)           // [8]{00010101}
	w.Count()             // 3
	w.Indices()           // [3 5 7]

A Whole grows on demand: setting or toggling a bit beyond the current
length extends the value, while clearing beyond it is a no-op. There is
no arithmetic; the type is a bit container, not a calculator.
*/
package whole
