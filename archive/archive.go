// Package archive stores Huffman-coded data in self-describing artifacts: a
// header holding the SymbolTable followed by the encoded bit stream, padded
// with zero bits to a whole byte.
package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/hufftree"
	"github.com/ethereum/go-ethereum/log"
)

// Archiver runs the compress and decompress pipelines.  Each call owns its
// own SymbolTable, Tree and CodeBook; an Archiver holds only configuration.
type Archiver struct {
	cfg Config
	log log.Logger
}

// New constructs an Archiver.  A nil cfg means DefaultConfig.
func New(cfg *Config) *Archiver {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	c := cfg.sanitize()
	return &Archiver{cfg: c, log: c.Logger}
}

// Config returns the effective configuration.
func (a *Archiver) Config() Config {
	return a.cfg
}

// Compress writes the compressed artifact for the file at path to
// CompressedPath(path) and returns the encoded bit sequence.
func (a *Archiver) Compress(path string) (*hufftree.BitString, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compress: %w: %w", hufftree.ErrSourceUnavailable, err)
	}
	defer in.Close()

	outPath := a.CompressedPath(path)
	bits, err := a.writeArtifact(outPath, func(w io.Writer) (*hufftree.BitString, error) {
		return a.CompressStream(in, w)
	})
	if err != nil {
		return nil, fmt.Errorf("compress %q: %w", path, err)
	}
	a.log.Info("Compressed file", "input", path, "output", outPath, "bits", bits.Len())
	return bits, nil
}

// Decompress reconstructs the file compressed at path, writes it to
// ReconstructedPath(path), and returns its contents.
func (a *Archiver) Decompress(path string) ([]byte, error) {
	outPath, err := a.ReconstructedPath(path)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w: %w", hufftree.ErrSourceUnavailable, err)
	}
	defer in.Close()

	var data []byte
	_, err = a.writeArtifact(outPath, func(w io.Writer) (*hufftree.BitString, error) {
		var err error
		data, err = a.DecompressStream(in, w)
		return nil, err
	})
	if err != nil {
		return nil, fmt.Errorf("decompress %q: %w", path, err)
	}
	a.log.Info("Decompressed file", "input", path, "output", outPath, "bytes", len(data))
	return data, nil
}

// writeArtifact creates path, runs fn against a buffered writer for it, and
// removes the file again unless fn and the final flush both complete.
func (a *Archiver) writeArtifact(path string, fn func(w io.Writer) (*hufftree.BitString, error)) (*hufftree.BitString, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	complete := false
	defer func() {
		if complete {
			return
		}
		_ = f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			a.log.Warn("Failed to remove partial artifact", "path", path, "err", rmErr)
		}
	}()

	bw := bufio.NewWriterSize(f, a.cfg.BufferSize)
	bits, err := fn(bw)
	if err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	complete = true
	return bits, nil
}

// CompressStream reads r twice, once to count symbols and once to encode
// them, and writes the header and encoded payload to w.  It returns the
// encoded bit sequence.
func (a *Archiver) CompressStream(r io.ReadSeeker, w io.Writer) (*hufftree.BitString, error) {
	table, err := hufftree.CountReader(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind input: %w", err)
	}

	tree := hufftree.BuildTree(table)
	book := hufftree.NewCodeBook(tree)
	tree.Release()

	headerLen, err := WriteHeader(w, table)
	if err != nil {
		return nil, err
	}

	bits := &hufftree.BitString{}
	sink := hufftree.NewStreamBitWriter(w)
	n, err := hufftree.NewEncoder(&book).EncodeReader(bufio.NewReaderSize(r, a.cfg.BufferSize), teeBitWriter{sink, bits})
	if errors.Is(err, hufftree.ErrUnknownSymbol) {
		return nil, fmt.Errorf("input changed between passes: %w", err)
	}
	if err != nil {
		return nil, err
	}
	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush bit stream: %w", err)
	}

	a.log.Debug("Encoded stream", "symbols", len(table), "inputBytes", table.Total()-table[hufftree.EndMarker], "headerBytes", headerLen, "bits", n)
	return bits, nil
}

// DecompressStream reads a header and encoded payload from r, writes the
// reconstructed bytes to w, and returns them.
func (a *Archiver) DecompressStream(r io.Reader, w io.Writer) ([]byte, error) {
	br := bufio.NewReaderSize(r, a.cfg.BufferSize)
	table, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	tree := hufftree.BuildTree(table)
	defer tree.Release()

	a.log.Debug("Read header", "symbols", len(table), "nodes", tree.Len(), "height", tree.Height())

	var flush func() error
	out, ok := w.(io.ByteWriter)
	if !ok {
		bw := bufio.NewWriterSize(w, a.cfg.BufferSize)
		out, flush = bw, bw.Flush
	}

	data, err := hufftree.NewDecoder(tree).Decode(hufftree.NewStreamBitReader(br), out)
	if err != nil {
		return nil, err
	}
	if flush != nil {
		if err := flush(); err != nil {
			return nil, fmt.Errorf("failed to flush output: %w", err)
		}
	}
	return data, nil
}

type teeBitWriter struct {
	a, b hufftree.BitWriter
}

func (t teeBitWriter) WriteBit(bit byte) error {
	return errors.Join(t.a.WriteBit(bit), t.b.WriteBit(bit))
}
