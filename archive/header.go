package archive

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/chronos-tachyon/hufftree"
)

// Magic identifies a compressed artifact.  The last byte is the format
// version.
const Magic = "HUF\x01"

// maxEntries bounds the entry count accepted by ReadHeader.
const maxEntries = int(hufftree.EndMarker) + 1

// WriteHeader serializes a SymbolTable: Magic, the number of entries as a
// uvarint, then one (symbol, count) uvarint pair per entry in ascending symbol
// order.
func WriteHeader(w io.Writer, table hufftree.SymbolTable) (int, error) {
	symbols := table.Symbols()
	buf := make([]byte, 0, len(Magic)+binary.MaxVarintLen64*(1+2*len(symbols)))
	buf = append(buf, Magic...)
	buf = binary.AppendUvarint(buf, uint64(len(symbols)))
	for _, sym := range symbols {
		buf = binary.AppendUvarint(buf, uint64(sym))
		buf = binary.AppendUvarint(buf, table[sym])
	}
	n, err := w.Write(buf)
	if err != nil {
		return n, fmt.Errorf("failed to write header: %w", err)
	}
	return n, nil
}

// ReadHeader reads a SymbolTable written by WriteHeader.  It consumes exactly
// the header's bytes, leaving r positioned at the first payload byte.
func ReadHeader(r io.ByteReader) (hufftree.SymbolTable, error) {
	for i := 0; i < len(Magic); i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, headerError("magic", err)
		}
		if b != Magic[i] {
			return nil, fmt.Errorf("%w: bad magic byte %d: got %#02x, want %#02x", ErrBadHeader, i, b, Magic[i])
		}
	}

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, headerError("entry count", err)
	}
	if count == 0 || count > uint64(maxEntries) {
		return nil, fmt.Errorf("%w: entry count %d out of range [1, %d]", ErrBadHeader, count, maxEntries)
	}

	table := make(hufftree.SymbolTable, count)
	for i := uint64(0); i < count; i++ {
		sym, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, headerError("symbol", err)
		}
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, headerError("count", err)
		}
		if sym > uint64(hufftree.EndMarker) {
			return nil, fmt.Errorf("%w: entry %d: symbol %d out of range", ErrBadHeader, i, sym)
		}
		if _, dup := table[hufftree.Symbol(sym)]; dup {
			return nil, fmt.Errorf("%w: entry %d: duplicate symbol %v", ErrBadHeader, i, hufftree.Symbol(sym))
		}
		table[hufftree.Symbol(sym)] = n
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	return table, nil
}

func headerError(field string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: reading %s: %v", ErrBadHeader, field, err)
}
