package hufftree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// SymbolTable maps each Symbol to the number of times it occurs.
//
// Tables produced by the Count* functions always contain EndMarker with a
// count of exactly 1.  Tables from other sources may carry a different
// EndMarker count; only its presence matters to the Decoder.
type SymbolTable map[Symbol]uint64

// CountBytes builds a SymbolTable from an in-memory byte sequence.
func CountBytes(p []byte) SymbolTable {
	var counts [256]uint64
	for _, b := range p {
		counts[b]++
	}
	return fromCounts(&counts)
}

// CountReader builds a SymbolTable from every byte that r yields.
func CountReader(r io.Reader) (SymbolTable, error) {
	var counts [256]uint64
	br := bufio.NewReader(r)
	buf := make([]byte, 32*1024)
	for {
		n, err := br.Read(buf)
		for _, b := range buf[:n] {
			counts[b]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count symbols: %w", err)
		}
	}
	return fromCounts(&counts), nil
}

// CountFile builds a SymbolTable from the contents of the named file.  If the
// file cannot be opened, the returned error wraps ErrSourceUnavailable.
func CountFile(path string) (SymbolTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	table, err := CountReader(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return table, nil
}

func fromCounts(counts *[256]uint64) SymbolTable {
	table := make(SymbolTable, 16)
	for b, n := range counts {
		if n != 0 {
			table[Symbol(b)] = n
		}
	}
	table[EndMarker] = 1
	return table
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (table SymbolTable) Total() uint64 {
	var sum uint64
	for _, n := range table {
		sum = saturatingAdd(sum, n)
	}
	return sum
}

// Symbols returns the table's symbols in ascending order.
func (table SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of this table.
func (table SymbolTable) Clone() SymbolTable {
	out := make(SymbolTable, len(table))
	for sym, n := range table {
		out[sym] = n
	}
	return out
}

// Equal returns true iff both tables hold the same symbols with the same
// counts.
func (table SymbolTable) Equal(other SymbolTable) bool {
	if len(table) != len(other) {
		return false
	}
	for sym, n := range table {
		if m, found := other[sym]; !found || m != n {
			return false
		}
	}
	return true
}

// Validate checks that this table can be turned into a decodable Tree: it
// must be non-empty, label only leaf symbols, and contain EndMarker with a
// non-zero count.
func (table SymbolTable) Validate() error {
	if len(table) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidTable)
	}
	for sym, n := range table {
		if !sym.IsLeaf() {
			return fmt.Errorf("%w: symbol %d is out of range", ErrInvalidTable, int32(sym))
		}
		if n == 0 {
			return fmt.Errorf("%w: symbol %v has zero count", ErrInvalidTable, sym)
		}
	}
	if _, found := table[EndMarker]; !found {
		return fmt.Errorf("%w: missing end marker", ErrInvalidTable)
	}
	return nil
}
