package Go_Structs

import (
	"math/bits"
)

// NewBitSet with room for at least size bits, rounded up to a whole word.
func NewBitSet(size int) BitSet {
	return BitSet{words: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitSet is a fixed-size array of bits packed into uints. The zero value
// holds no bits.
type BitSet struct {
	words []uint
}

func (u BitSet) Len() int {
	return len(u.words) * bits.UintSize
}

func (u BitSet) Get(i int) bool {
	return (u.words[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitSet) Up(i int) {
	u.words[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitSet) Down(i int) {
	u.words[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of raised bits.
func (u BitSet) Count() int {
	c := 0
	for _, w := range u.words {
		c += bits.OnesCount(w)
	}
	return c
}

// Clear lowers every bit.
func (u BitSet) Clear() {
	for i := range u.words {
		u.words[i] = 0
	}
}
