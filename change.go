package whole

type bitOp int

const (
	opClear bitOp = iota
	opSet
	opToggle
)

// Reset clears the value to zero and releases its storage.
func (w *Whole) Reset() {
	w.store = nil
}

// Set sets the bit at position i, growing the value as needed.
func (w *Whole) Set(i uint) {
	w.change(i, opSet)
}

// Clear clears the bit at position i. Positions beyond the current
// length are already zero, so no storage is allocated.
func (w *Whole) Clear(i uint) {
	w.change(i, opClear)
}

// Toggle inverts the bit at position i, growing the value as needed.
func (w *Whole) Toggle(i uint) {
	w.change(i, opToggle)
}

// SetRange sets every bit in the inclusive range [from, to]. The
// bounds may be given in either order.
func (w *Whole) SetRange(from, to uint) {
	w.changeRange(from, to, opSet)
}

// ClearRange clears every bit in the inclusive range [from, to]. The
// bounds may be given in either order. Words beyond the current
// storage are skipped rather than allocated.
func (w *Whole) ClearRange(from, to uint) {
	w.changeRange(from, to, opClear)
}

// ToggleRange inverts every bit in the inclusive range [from, to]. The
// bounds may be given in either order.
func (w *Whole) ToggleRange(from, to uint) {
	w.changeRange(from, to, opToggle)
}

// SetTo sets or clears the bit at position i.
func (w *Whole) SetTo(i uint, value bool) {
	if value {
		w.change(i, opSet)
	} else {
		w.change(i, opClear)
	}
}

// SetRangeTo sets or clears every bit in the inclusive range [from, to].
func (w *Whole) SetRangeTo(from, to uint, value bool) {
	if value {
		w.changeRange(from, to, opSet)
	} else {
		w.changeRange(from, to, opClear)
	}
}

// Splice replaces the inclusive bit range [from, to] of w with the
// bits of values, whose position 0 lands on position from. Bits of
// values beyond the window width are ignored; bits of w outside the
// window are untouched. The bounds may be given in either order.
func (w *Whole) Splice(from, to uint, values *Whole) {
	if from > to {
		from, to = to, from
	}

	cur := w.Indices()
	ins := values.Indices()

	merged := make([]uint, 0, len(cur)+len(ins))
	for _, id := range cur {
		if id < from {
			merged = append(merged, id)
		}
	}
	for _, id := range ins {
		if id <= to-from {
			merged = append(merged, id+from)
		}
	}
	for _, id := range cur {
		if id > to {
			merged = append(merged, id)
		}
	}

	w.ReconfigureIndices(merged)
}

// NotSelf replaces the value with its logical complement: zero if any
// bit is set, one otherwise. Per-bit complement is ToggleRange.
func (w *Whole) NotSelf() {
	if w.Any() {
		w.store = nil
	} else {
		w.store = []uint{1}
	}
}

func (w *Whole) change(i uint, op bitOp) {
	wi := i / wordBits
	if wi >= uint(len(w.store)) {
		if op == opClear {
			return
		}
		w.grow(wi + 1)
	}
	w.apply(wi, 1<<(i%wordBits), op)
}

// changeRange applies op to the inclusive range [from, to] one word at
// a time: a masked low word, full interior words, and a masked high
// word. Results match a bit-by-bit loop, in time proportional to the
// affected words.
func (w *Whole) changeRange(from, to uint, op bitOp) {
	if from > to {
		from, to = to, from
	}

	fi, fj := from/wordBits, from%wordBits
	ti, tj := to/wordBits, to%wordBits

	n := uint(len(w.store))
	if ti >= n && op != opClear {
		w.grow(ti + 1)
		n = ti + 1
	}

	fm := wordMax << fj                  // bits at or above the low offset
	tm := wordMax >> (wordBits - 1 - tj) // bits at or below the high offset

	if fi == ti {
		if fi < n {
			w.apply(fi, fm&tm, op)
		}
		return
	}

	// lowest affected word
	if fi < n {
		w.apply(fi, fm, op)
	}

	// interior words, whole at a time
	stop := ti
	if n < stop {
		stop = n
	}
	for i := fi + 1; i < stop; i++ {
		switch op {
		case opSet:
			w.store[i] = wordMax
		case opClear:
			w.store[i] = 0
		case opToggle:
			w.store[i] = ^w.store[i]
		}
	}

	// highest affected word
	if ti < n {
		w.apply(ti, tm, op)
	}
}

func (w *Whole) apply(wi uint, mask uint, op bitOp) {
	switch op {
	case opSet:
		w.store[wi] |= mask
	case opClear:
		w.store[wi] &^= mask
	case opToggle:
		w.store[wi] ^= mask
	}
}

func (w *Whole) grow(words uint) {
	if uint(len(w.store)) >= words {
		return
	}
	store := make([]uint, words)
	copy(store, w.store)
	w.store = store
}
