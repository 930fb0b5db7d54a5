package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/hufftree"
)

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.txt")
	require.NoError(t, os.WriteFile(path, []byte("aaab"), 0o644))

	a := New(nil)
	r, err := a.Analyze(path)
	require.NoError(t, err)

	require.Equal(t, uint64(4), r.InputBytes)
	require.Equal(t, uint64(7), r.PayloadBits)
	require.Equal(t, 2, r.TreeHeight)
	require.Equal(t, uint64(r.HeaderBytes)+1, r.CompressedBytes)
	require.Positive(t, r.DeflateBytes)
	require.Equal(t, []SymbolStat{
		{Symbol: "'a'", Value: 'a', Count: 3, Code: "1", Bits: 1},
		{Symbol: "'b'", Value: 'b', Count: 1, Code: "00", Bits: 2},
		{Symbol: "EOF", Value: 256, Count: 1, Code: "01", Bits: 2},
	}, r.Entries)

	// the report agrees with what Compress actually writes
	_, err = a.Compress(path)
	require.NoError(t, err)
	info, err := os.Stat(path + ".huf")
	require.NoError(t, err)
	require.Equal(t, int64(r.CompressedBytes), info.Size())
}

func TestAnalyze_Ratio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skewed.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", 10000)+"b"), 0o644))

	r, err := New(nil).Analyze(path)
	require.NoError(t, err)
	require.Less(t, r.Ratio(), 0.2)

	empty := &Report{}
	require.Zero(t, empty.Ratio())
}

func TestAnalyze_MissingSource(t *testing.T) {
	_, err := New(nil).Analyze(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, hufftree.ErrSourceUnavailable)
	var pathErr *os.PathError
	require.ErrorAs(t, err, &pathErr)
}
