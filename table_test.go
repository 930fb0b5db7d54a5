package hufftree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountBytes(t *testing.T) {
	table := CountBytes([]byte("aaab"))
	expect := SymbolTable{'a': 3, 'b': 1, EndMarker: 1}
	require.True(t, expect.Equal(table), "got %v", table)
	require.Equal(t, uint64(5), table.Total())
	require.Equal(t, []Symbol{'a', 'b', EndMarker}, table.Symbols())
}

func TestCountBytes_Empty(t *testing.T) {
	table := CountBytes(nil)
	require.Equal(t, SymbolTable{EndMarker: 1}, table)
}

func TestCountReader(t *testing.T) {
	input := strings.Repeat("hello, world\n", 1000)
	table, err := CountReader(strings.NewReader(input))
	require.NoError(t, err)
	require.True(t, CountBytes([]byte(input)).Equal(table))
	require.Equal(t, uint64(len(input)+1), table.Total())
}

func TestCountFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("contents", func(t *testing.T) {
		path := filepath.Join(dir, "in.txt")
		require.NoError(t, os.WriteFile(path, []byte{0, 0, 255, 'x'}, 0o644))
		table, err := CountFile(path)
		require.NoError(t, err)
		require.Equal(t, SymbolTable{0: 2, 255: 1, 'x': 1, EndMarker: 1}, table)
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		table, err := CountFile(path)
		require.NoError(t, err)
		require.Equal(t, SymbolTable{EndMarker: 1}, table)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := CountFile(filepath.Join(dir, "does-not-exist"))
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrSourceUnavailable))
		require.Contains(t, err.Error(), "does-not-exist")

		var pathErr *os.PathError
		require.ErrorAs(t, err, &pathErr)
		require.Equal(t, filepath.Join(dir, "does-not-exist"), pathErr.Path)
	})
}

func TestSymbolTable_EndMarkerOverwritten(t *testing.T) {
	// raw input never contributes to the EndMarker count
	table := CountBytes([]byte{0xff, 0xff})
	require.Equal(t, uint64(1), table[EndMarker])
	require.Equal(t, uint64(2), table[0xff])
}

func TestSymbolTable_Validate(t *testing.T) {
	type testRow struct {
		name  string
		table SymbolTable
		ok    bool
	}

	testData := [...]testRow{
		{"fresh", CountBytes([]byte("abc")), true},
		{"eof-only", SymbolTable{EndMarker: 1}, true},
		{"eof-count-differs", SymbolTable{'a': 1, EndMarker: 7}, true},
		{"empty", SymbolTable{}, false},
		{"no-eof", SymbolTable{'a': 1}, false},
		{"internal-marker", SymbolTable{InternalMarker: 1, EndMarker: 1}, false},
		{"negative", SymbolTable{-4: 1, EndMarker: 1}, false},
		{"zero-count", SymbolTable{'a': 0, EndMarker: 1}, false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := row.table.Validate()
			if row.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidTable)
			}
		})
	}
}

func TestSymbolTable_Clone(t *testing.T) {
	table := CountBytes([]byte("xyz"))
	clone := table.Clone()
	require.True(t, table.Equal(clone))
	clone['x']++
	require.False(t, table.Equal(clone))
	require.Equal(t, uint64(1), table['x'])
}

func TestSymbol_String(t *testing.T) {
	require.Equal(t, "'a'", Symbol('a').String())
	require.Equal(t, "'\\x00'", Symbol(0).String())
	require.Equal(t, "EOF", EndMarker.String())
	require.Equal(t, "INTERNAL", InternalMarker.String())
	require.Equal(t, "Symbol(-1)", InvalidSymbol.String())
}
