package hufftree

import (
	"bufio"
	"fmt"
	"io"
)

// Encoder maps bytes to codewords through a CodeBook.
type Encoder struct {
	book *CodeBook
	eof  Code
}

// NewEncoder constructs an Encoder.  The CodeBook must have an entry for
// EndMarker.
func NewEncoder(book *CodeBook) *Encoder {
	return &Encoder{book: book, eof: book.MustLookup(EndMarker)}
}

// Encode writes the codeword of every byte in src, followed by the codeword of
// EndMarker, to sink.  It returns the number of bits produced.  A nil sink
// only counts bits.
//
// Every byte in src must have an entry in the CodeBook.
//
func (e *Encoder) Encode(src []byte, sink BitWriter) (uint64, error) {
	var total uint64
	for _, b := range src {
		n, err := e.emit(e.book.MustLookup(Symbol(b)), sink)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := e.emit(e.eof, sink)
	total += n
	return total, err
}

// EncodeReader is like Encode, but reads the bytes to encode from r.  Since r
// may yield bytes the CodeBook was not built from, a byte with no codeword
// is reported as an error wrapping ErrUnknownSymbol rather than a panic.
func (e *Encoder) EncodeReader(r io.Reader, sink BitWriter) (uint64, error) {
	var total uint64
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("failed to read input: %w", err)
		}
		hc, found := e.book.Lookup(Symbol(b))
		if !found {
			return total, fmt.Errorf("%w: %v", ErrUnknownSymbol, Symbol(b))
		}
		n, err := e.emit(hc, sink)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := e.emit(e.eof, sink)
	total += n
	return total, err
}

func (e *Encoder) emit(hc Code, sink BitWriter) (uint64, error) {
	if sink == nil {
		return uint64(hc.Size), nil
	}
	for i := 0; i < int(hc.Size); i++ {
		if err := sink.WriteBit(hc.Bit(i)); err != nil {
			return uint64(i), fmt.Errorf("failed to write bit: %w", err)
		}
	}
	return uint64(hc.Size), nil
}

// EncodedSize returns the number of bits Encode would produce for input whose
// byte counts are given by table.  The EndMarker's codeword is counted once,
// whatever its count in the table.
func (e *Encoder) EncodedSize(table SymbolTable) uint64 {
	total := uint64(e.eof.Size)
	for sym, n := range table {
		if sym == EndMarker {
			continue
		}
		hc := e.book.MustLookup(sym)
		total = saturatingAdd(total, saturatingMul(uint64(hc.Size), n))
	}
	return total
}
