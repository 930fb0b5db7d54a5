package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeBook maps every leaf Symbol of a Tree to its codeword.
type CodeBook struct {
	codes [maxLeaves]Code
	valid [maxLeaves]bool
	count int
}

// NewCodeBook derives a CodeBook from the given Tree by depth-first traversal.
// Descending into the zero branch appends a 0 bit and descending into the one
// branch appends a 1 bit.  If the root is itself a leaf, its symbol maps to
// the empty Code.
func NewCodeBook(t *Tree) CodeBook {
	type stackItem struct {
		id   NodeID
		code Code
	}

	var book CodeBook
	stack := make([]stackItem, 1, 16)
	stack[0] = stackItem{id: t.Root()}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.IsLeaf(top.id) {
			sym := t.Symbol(top.id)
			assert.Assertf(!book.valid[sym], "symbol %v appears on more than one leaf", sym)
			book.codes[sym] = top.code
			book.valid[sym] = true
			book.count++
			continue
		}

		stack = append(stack,
			stackItem{t.One(top.id), top.code.Append(1)},
			stackItem{t.Zero(top.id), top.code.Append(0)})
	}
	return book
}

// Lookup returns the codeword for sym, if sym has one.
func (book *CodeBook) Lookup(sym Symbol) (Code, bool) {
	if !sym.IsLeaf() || !book.valid[sym] {
		return Code{}, false
	}
	return book.codes[sym], true
}

// MustLookup returns the codeword for sym, panicking if there is none.
func (book *CodeBook) MustLookup(sym Symbol) Code {
	hc, found := book.Lookup(sym)
	assert.Assertf(found, "symbol %v has no entry in CodeBook", sym)
	return hc
}

// Len returns the number of entries.
func (book *CodeBook) Len() int {
	return book.count
}

// Symbols returns the symbols that have codewords, in ascending order.
func (book *CodeBook) Symbols() []Symbol {
	out := make([]Symbol, 0, book.count)
	for sym := Symbol(0); sym <= EndMarker; sym++ {
		if book.valid[sym] {
			out = append(out, sym)
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeBook to the
// given writer.
func (book *CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	for _, sym := range book.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", sym, book.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
