package whole

import (
	"fmt"
	"strings"
)

const wordMax = ^uint(0)
const wordBits = uint(32 << (wordMax >> 63)) // 32 or 64

const maxStringedWords = 8

// Whole is a non-negative integer of unbounded magnitude, stored as a
// sequence of uint words, least-significant word first. The zero value
// is ready to use and represents zero.
type Whole struct {
	// nil means zero; trailing zero words may remain after clears and
	// are never observable
	store []uint
}

// New returns a new zero-valued Whole.
func New() *Whole {
	return &Whole{}
}

// NewFromUint64 returns a Whole holding the value v.
func NewFromUint64(v uint64) *Whole {
	return &Whole{store: uint64ToWords(v)}
}

// NewFromBits returns a Whole whose bit at position i is set iff b[i]
// is true.
func NewFromBits(b []bool) *Whole {
	return &Whole{store: bitsToWords(b)}
}

// NewFromIndices returns a Whole with a bit set at every listed
// position. The list does not have to be sorted; duplicates are
// harmless. An empty list produces zero.
func NewFromIndices(ids []uint) *Whole {
	return &Whole{store: indicesToWords(ids)}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (w *Whole) Clone() *Whole {
	if w.store == nil {
		return &Whole{}
	}
	store := make([]uint, len(w.store))
	copy(store, w.store)
	return &Whole{store: store}
}

// Swap exchanges the values of w and other.
func (w *Whole) Swap(other *Whole) {
	w.store, other.store = other.store, w.store
}

// Assign replaces the value of w with a copy of other. Safe for
// self-assignment.
func (w *Whole) Assign(other *Whole) {
	w.Swap(other.Clone())
}

// AssignUint64 replaces the value of w with v.
func (w *Whole) AssignUint64(v uint64) {
	w.Swap(NewFromUint64(v))
}

// ReconfigureBits replaces the value of w as NewFromBits would build it.
func (w *Whole) ReconfigureBits(b []bool) {
	w.Swap(NewFromBits(b))
}

// ReconfigureIndices replaces the value of w as NewFromIndices would
// build it.
func (w *Whole) ReconfigureIndices(ids []uint) {
	w.Swap(NewFromIndices(ids))
}

// Equal reports whether w and other represent the same value. A nil
// store and a store trimmed to nothing are both zero and compare equal.
func (w *Whole) Equal(other *Whole) bool {
	n := w.wlen()
	if n != other.wlen() {
		return false
	}
	for i := uint(0); i < n; i++ {
		if w.store[i] != other.store[i] {
			return false
		}
	}
	return true
}

// String renders the value as "[len]{bits}" with position 0 first,
// words separated by spaces. Values longer than eight words keep the
// first and last four and elide the middle.
func (w *Whole) String() string {
	n := w.Len()
	if n == 0 {
		return "[0]{}"
	}
	words := (n + wordBits - 1) / wordBits

	var b strings.Builder
	fmt.Fprintf(&b, "[%v]{", n)
	if words <= maxStringedWords {
		for wi := uint(0); wi < words; wi++ {
			if wi != 0 {
				b.WriteByte(' ')
			}
			w.writeWord(&b, wi, words, n)
		}
	} else {
		for wi := uint(0); wi < maxStringedWords/2; wi++ {
			if wi != 0 {
				b.WriteByte(' ')
			}
			w.writeWord(&b, wi, words, n)
		}
		fmt.Fprintf(&b, " <more %v bits>", (words-maxStringedWords)*wordBits)
		for wi := words - maxStringedWords/2; wi < words; wi++ {
			b.WriteByte(' ')
			w.writeWord(&b, wi, words, n)
		}
	}
	b.WriteByte('}')
	return b.String()
}

func (w *Whole) writeWord(b *strings.Builder, wi uint, words uint, bitLen uint) {
	word := w.store[wi]
	n := wordBits
	if wi == words-1 {
		if r := bitLen % wordBits; r != 0 {
			n = r
		}
	}
	for j := uint(0); j < n; j++ {
		if word&(1<<j) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}

// wlen is the trimmed word count: the number of words up to and
// including the highest non-zero one.
func (w *Whole) wlen() uint {
	i := uint(len(w.store))
	for i > 0 && w.store[i-1] == 0 {
		i--
	}
	return i
}

func wordsForBits(n uint) uint {
	return (n + wordBits - 1) / wordBits
}

func uint64ToWords(v uint64) []uint {
	var words []uint
	for v != 0 {
		words = append(words, uint(v))
		v >>= wordBits
	}
	return words
}

func bitsToWords(b []bool) []uint {
	if len(b) == 0 {
		return nil
	}
	words := make([]uint, wordsForBits(uint(len(b))))
	for i, set := range b {
		if set {
			words[uint(i)/wordBits] |= 1 << (uint(i) % wordBits)
		}
	}
	return trim(words)
}

func indicesToWords(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	max := ids[0]
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	words := make([]uint, max/wordBits+1)
	for _, id := range ids {
		words[id/wordBits] |= 1 << (id % wordBits)
	}
	return words
}

func trim(words []uint) []uint {
	i := uint(len(words))
	for i > 0 && words[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return words[:i]
}
