package hufftree

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest possible codeword: the height of a maximally
// unbalanced tree over every leaf symbol.
const MaxCodeSize = maxLeaves - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a root-to-leaf path as a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code from a list of
// bits, first bit first.
func MakeCode(bits ...byte) Code {
	var hc Code
	for _, bit := range bits {
		hc = hc.Append(bit)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return int(hc.Size)
}

// Bit returns the i'th bit of this Code, counting from the root.
func (hc Code) Bit(i int) byte {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return byte(hc.Bits[i/64]>>(uint(i)%64)) & 1
}

// Append returns a copy of this Code extended by one bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "Code exceeds %d bits", MaxCodeSize)
	i := uint(hc.Size)
	if bit != 0 {
		hc.Bits[i/64] |= 1 << (i % 64)
	}
	hc.Size++
	return hc
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size) + 2)
	sb.WriteByte('"')
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = Code{}
