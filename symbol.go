package hufftree

import (
	"strconv"
)

// Symbol represents a symbol in the byte alphabet plus the reserved markers.
// Values 0 through 255 are raw bytes.
type Symbol int32

const (
	// EndMarker is the reserved symbol that terminates every encoded stream.
	// It is never observed in raw input.
	EndMarker = Symbol(256)

	// InternalMarker labels internal tree nodes.  It never labels a leaf.
	InternalMarker = Symbol(257)

	// MaxByteSymbol is the largest symbol that stands for a raw byte.
	MaxByteSymbol = Symbol(255)
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// maxLeaves is the number of distinct symbols that may label a leaf.
const maxLeaves = 257

// IsByte returns true iff this Symbol stands for a raw byte value.
func (sym Symbol) IsByte() bool {
	return sym >= 0 && sym <= MaxByteSymbol
}

// IsLeaf returns true iff this Symbol may label a leaf of a Tree.
func (sym Symbol) IsLeaf() bool {
	return sym >= 0 && sym <= EndMarker
}

// String returns a programmer-readable representation of this Symbol.
func (sym Symbol) String() string {
	switch {
	case sym.IsByte():
		return strconv.QuoteRuneToASCII(rune(sym))
	case sym == EndMarker:
		return "EOF"
	case sym == InternalMarker:
		return "INTERNAL"
	default:
		return "Symbol(" + strconv.FormatInt(int64(sym), 10) + ")"
	}
}
