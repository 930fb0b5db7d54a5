package hufftree

import (
	"fmt"
	"io"
)

// Decoder reconstructs bytes by walking a Tree one bit at a time.
type Decoder struct {
	tree *Tree
}

// NewDecoder constructs a Decoder for the given Tree.
func NewDecoder(t *Tree) *Decoder {
	return &Decoder{tree: t}
}

// Decode reads bits from src until it reaches the EndMarker leaf, writing each
// decoded byte to out (which may be nil) and returning all of them.
//
// If src runs out of bits first, the error wraps ErrTruncated.  Bits after the
// EndMarker's codeword are left unread.
//
// A Tree whose root is a leaf has no branch to descend.  If that leaf is
// EndMarker, Decode returns immediately without reading any bits, since the
// only stream such a tree encodes is the empty one.  Otherwise the error
// wraps ErrDegenerateTree.
//
func (d *Decoder) Decode(src BitReader, out io.ByteWriter) ([]byte, error) {
	t := d.tree
	root := t.Root()
	if t.IsLeaf(root) {
		if t.Symbol(root) == EndMarker {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("%w: root is %v", ErrDegenerateTree, t.Symbol(root))
	}

	result := make([]byte, 0, 64)
	var bitsRead uint64
	current := root
	for {
		bit, err := src.ReadBit()
		if err == io.EOF {
			return result, fmt.Errorf("%w: stream ended after %d bits and %d bytes", ErrTruncated, bitsRead, len(result))
		}
		if err != nil {
			return result, fmt.Errorf("failed to read bit %d: %w", bitsRead, err)
		}
		bitsRead++

		current = t.Child(current, bit)
		if !t.IsLeaf(current) {
			continue
		}

		sym := t.Symbol(current)
		if sym == EndMarker {
			return result, nil
		}

		b := byte(sym)
		if out != nil {
			if err := out.WriteByte(b); err != nil {
				return result, fmt.Errorf("failed to write byte %d: %w", len(result), err)
			}
		}
		result = append(result, b)
		current = root
	}
}
