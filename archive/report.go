package archive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/hufftree"
	"github.com/klauspost/compress/flate"
)

// SymbolStat describes one CodeBook entry.
type SymbolStat struct {
	Symbol string `json:"symbol"`
	Value  int    `json:"value"`
	Count  uint64 `json:"count"`
	Code   string `json:"code"`
	Bits   int    `json:"bits"`
}

// Report summarizes how a file would compress, without writing an artifact.
type Report struct {
	Path            string       `json:"path"`
	InputBytes      uint64       `json:"inputBytes"`
	HeaderBytes     int          `json:"headerBytes"`
	PayloadBits     uint64       `json:"payloadBits"`
	CompressedBytes uint64       `json:"compressedBytes"`
	TreeHeight      int          `json:"treeHeight"`
	DeflateBytes    int64        `json:"deflateBytes"`
	Entries         []SymbolStat `json:"entries"`
}

// Ratio returns CompressedBytes / InputBytes, or 0 for empty input.
func (r *Report) Ratio() float64 {
	if r.InputBytes == 0 {
		return 0
	}
	return float64(r.CompressedBytes) / float64(r.InputBytes)
}

// Analyze builds a Report for the file at path.  DeflateBytes is the size the
// same input takes under DEFLATE at its best compression level, for
// comparison.
func (a *Archiver) Analyze(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w: %w", hufftree.ErrSourceUnavailable, err)
	}

	table := hufftree.CountBytes(data)
	tree := hufftree.BuildTree(table)
	defer tree.Release()
	book := hufftree.NewCodeBook(tree)

	headerLen, err := WriteHeader(io.Discard, table)
	if err != nil {
		return nil, fmt.Errorf("analyze %q: %w", path, err)
	}
	payload := hufftree.NewEncoder(&book).EncodedSize(table)

	deflated, err := deflateSize(data)
	if err != nil {
		return nil, fmt.Errorf("analyze %q: %w", path, err)
	}

	r := &Report{
		Path:            path,
		InputBytes:      uint64(len(data)),
		HeaderBytes:     headerLen,
		PayloadBits:     payload,
		CompressedBytes: uint64(headerLen) + (payload+7)/8,
		TreeHeight:      tree.Height(),
		DeflateBytes:    deflated,
		Entries:         make([]SymbolStat, 0, book.Len()),
	}
	for _, sym := range book.Symbols() {
		hc := book.MustLookup(sym)
		r.Entries = append(r.Entries, SymbolStat{
			Symbol: sym.String(),
			Value:  int(sym),
			Count:  table[sym],
			Code:   strings.Trim(hc.String(), "\""),
			Bits:   hc.Len(),
		})
	}

	a.log.Debug("Analyzed file", "path", path, "symbols", len(table), "payloadBits", payload, "deflateBytes", deflated)
	return r, nil
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}

func deflateSize(data []byte) (int64, error) {
	var cw countingWriter
	fw, err := flate.NewWriter(&cw, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := fw.Write(data); err != nil {
		return 0, err
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}
