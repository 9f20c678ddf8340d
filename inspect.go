package whole

import "math/bits"

// Len returns the number of bits needed to represent the value: one
// past the highest set position, or 0 for zero.
func (w *Whole) Len() uint {
	if o := w.wlen(); o > 0 {
		return (o-1)*wordBits + uint(bits.Len(w.store[o-1]))
	}
	return 0
}

// Count returns the number of set bits.
func (w *Whole) Count() uint {
	c := 0
	for _, word := range w.store {
		c += bits.OnesCount(word)
	}
	return uint(c)
}

// Any reports whether at least one bit is set.
func (w *Whole) Any() bool {
	return w.wlen() > 0
}

// None reports whether no bit is set.
func (w *Whole) None() bool {
	return !w.Any()
}

// Bool is the truthiness of the value, identical to Any. It exists so
// a Whole can feed a conditional without any numeric conversion.
func (w *Whole) Bool() bool {
	return w.Any()
}

// IsSet reports whether the bit at position i is set. Positions beyond
// the current length are false.
func (w *Whole) IsSet(i uint) bool {
	wi := i / wordBits
	if wi >= uint(len(w.store)) {
		return false
	}
	return w.store[wi]&(1<<(i%wordBits)) != 0
}

// Extract returns the inclusive range [from, to] as a new value whose
// bit 0 corresponds to position from of w. The bounds may be given in
// either order.
func (w *Whole) Extract(from, to uint) *Whole {
	if from > to {
		from, to = to, from
	}
	var ids []uint
	for _, id := range w.Indices() {
		if id >= from && id <= to {
			ids = append(ids, id-from)
		}
	}
	return NewFromIndices(ids)
}

// Reverse returns a new value in which every set bit at position
// p <= last moves to position last-p. Bits beyond last are dropped.
func (w *Whole) Reverse(last uint) *Whole {
	var ids []uint
	for _, id := range w.Indices() {
		if id <= last {
			ids = append(ids, last-id)
		}
	}
	return NewFromIndices(ids)
}

// ReverseAll reverses the bits below Len. Zero reverses to zero.
func (w *Whole) ReverseAll() *Whole {
	if w.Any() {
		return w.Reverse(w.Len() - 1)
	}
	return w.Clone()
}

// Not returns the logical complement as a value: zero if any bit is
// set, one otherwise.
func (w *Whole) Not() *Whole {
	out := w.Clone()
	out.NotSelf()
	return out
}

// Uint64 returns the low 64 bits of the value. Higher bits, if any,
// are silently dropped.
func (w *Whole) Uint64() uint64 {
	n := w.wlen()
	if limit := wordsForBits(64); n > limit {
		n = limit
	}
	var v uint64
	for i := n; i > 0; i-- {
		v <<= wordBits
		v |= uint64(w.store[i-1])
	}
	return v
}

// Bits returns the value as a dense mask of Len booleans, true at
// every set position. Zero yields nil.
func (w *Whole) Bits() []bool {
	n := w.Len()
	if n == 0 {
		return nil
	}
	b := make([]bool, n)
	for _, id := range w.Indices() {
		b[id] = true
	}
	return b
}

// Indices returns the positions of all set bits in ascending order, or
// nil for zero. It is the intermediate form Extract, Reverse and
// Splice are built on.
func (w *Whole) Indices() []uint {
	c := w.Count()
	if c == 0 {
		return nil
	}
	ids := make([]uint, 0, c)
	for wi, word := range w.store {
		for word != 0 {
			ids = append(ids, uint(wi)*wordBits+uint(bits.TrailingZeros(word)))
			word &= word - 1
		}
	}
	return ids
}

// Iterator returns a closure yielding set-bit positions in ascending
// order. The second result turns false after the last position.
func (w *Whole) Iterator() func() (uint, bool) {
	ids := w.Indices()
	next := 0
	return func() (uint, bool) {
		if next == len(ids) {
			return 0, false
		}
		id := ids[next]
		next++
		return id, true
	}
}
