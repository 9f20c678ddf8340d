package whole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLenAndCount(t *testing.T) {
	tests := map[string]*Whole{
		"small":      NewFromUint64(0b101101),
		"one_word":   NewFromIndices(seq(0, wordBits-1)),
		"sparse":     NewFromIndices([]uint{2, wordBits + 5, 7 * wordBits}),
		"grown":      NewFromIndices([]uint{999}),
		"mask_built": NewFromBits([]bool{true, false, true, true}),
	}
	for name, w := range tests {
		t.Run(name, func(t *testing.T) {
			ids := w.Indices()
			assert.Equal(t, uint(len(ids)), w.Count())
			assert.Equal(t, ids[len(ids)-1]+1, w.Len())
			assert.True(t, w.Any())
			assert.False(t, w.None())
		})
	}
}

func TestIsSetBeyondLength(t *testing.T) {
	w := NewFromUint64(5)
	assert.True(t, w.IsSet(0))
	assert.False(t, w.IsSet(1))
	assert.True(t, w.IsSet(2))
	assert.False(t, w.IsSet(3))
	assert.False(t, w.IsSet(10*wordBits))
}

func TestExtract(t *testing.T) {
	tests := map[string]struct {
		source   []uint
		from, to uint
		expected []uint
	}{
		"rebased_window": {
			source: []uint{1, 4, 6, 9},
			from:   4, to: 8,
			expected: []uint{0, 2},
		},
		"reversed_bounds": {
			source: []uint{1, 4, 6, 9},
			from:   8, to: 4,
			expected: []uint{0, 2},
		},
		"full_value": {
			source: []uint{1, 4},
			from:   0, to: 10,
			expected: []uint{1, 4},
		},
		"empty_window": {
			source: []uint{1, 4},
			from:   2, to: 3,
			expected: nil,
		},
		"across_words": {
			source: []uint{wordBits - 1, wordBits, wordBits + 2},
			from:   wordBits - 1, to: wordBits + 2,
			expected: []uint{0, 1, 3},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewFromIndices(tc.source).Extract(tc.from, tc.to)
			assert.Equal(t, tc.expected, got.Indices())
		})
	}
}

func TestReverse(t *testing.T) {
	t.Run("relocates_bits", func(t *testing.T) {
		w := NewFromIndices([]uint{0, 2, 7})
		assert.Equal(t, []uint{0, 5, 7}, w.Reverse(7).Indices())
	})
	t.Run("drops_bits_beyond_last", func(t *testing.T) {
		w := NewFromIndices([]uint{1, 3, 90})
		assert.Equal(t, []uint{0, 2}, w.Reverse(3).Indices())
	})
	t.Run("involution_below_last", func(t *testing.T) {
		last := uint(2*wordBits + 3)
		w := NewFromIndices([]uint{0, 5, wordBits, 2 * wordBits, 3 * wordBits})
		restricted := w.Extract(0, last)
		assert.True(t, w.Reverse(last).Reverse(last).Equal(restricted))
	})
	t.Run("reverse_all", func(t *testing.T) {
		w := NewFromIndices([]uint{0, 2, 7})
		assert.Equal(t, []uint{0, 5, 7}, w.ReverseAll().Indices())
	})
	t.Run("reverse_all_of_zero", func(t *testing.T) {
		assert.True(t, New().ReverseAll().None())
	})
}

func TestUint64Truncation(t *testing.T) {
	t.Run("low_bits_survive", func(t *testing.T) {
		w := NewFromIndices([]uint{1, 70})
		assert.Equal(t, uint64(2), w.Uint64())
	})
	t.Run("bit_63_kept", func(t *testing.T) {
		w := NewFromIndices([]uint{63})
		assert.Equal(t, uint64(1)<<63, w.Uint64())
	})
	t.Run("bit_64_dropped", func(t *testing.T) {
		w := NewFromIndices([]uint{64})
		assert.Equal(t, uint64(0), w.Uint64())
	})
	t.Run("round_trip_within_width", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 255, 1 << 33, ^uint64(0)} {
			assert.Equal(t, v, NewFromUint64(v).Uint64())
		}
	})
}

func TestBitsRoundTrip(t *testing.T) {
	tests := map[string][]uint{
		"small":        {0, 3},
		"word_spanning": {5, wordBits, 3*wordBits - 1},
	}
	for name, ids := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewFromIndices(ids)
			mask := w.Bits()
			assert.Equal(t, int(w.Len()), len(mask))
			assert.True(t, NewFromBits(mask).Equal(w))
		})
	}
}

func TestIndicesRoundTrip(t *testing.T) {
	ids := []uint{0, 1, wordBits - 1, wordBits, 2*wordBits + 3, 500}
	assert.Equal(t, ids, NewFromIndices(ids).Indices())
}

func TestIterator(t *testing.T) {
	w := NewFromIndices([]uint{2, wordBits, 300})

	var got []uint
	next := w.Iterator()
	for id, ok := next(); ok; id, ok = next() {
		got = append(got, id)
	}
	assert.Equal(t, w.Indices(), got)

	_, ok := next()
	assert.False(t, ok) // stays exhausted

	_, ok = New().Iterator()()
	assert.False(t, ok)
}

func TestNot(t *testing.T) {
	nonZero := NewFromIndices([]uint{44})
	assert.True(t, nonZero.Not().None())
	assert.Equal(t, []uint{44}, nonZero.Indices()) // operand untouched

	zero := New()
	assert.Equal(t, uint64(1), zero.Not().Uint64())
}

func TestBool(t *testing.T) {
	assert.False(t, New().Bool())
	assert.True(t, NewFromUint64(8).Bool())

	cleared := NewFromUint64(8)
	cleared.Clear(3)
	assert.False(t, cleared.Bool())
}
