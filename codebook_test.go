package hufftree

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeBook_Scenario(t *testing.T) {
	tree := BuildTree(CountBytes([]byte("aaab")))
	book := NewCodeBook(tree)
	tree.Release()

	require.Equal(t, 3, book.Len())
	require.Equal(t, []Symbol{'a', 'b', EndMarker}, book.Symbols())
	require.Equal(t, MakeCode(1), book.MustLookup('a'))
	require.Equal(t, MakeCode(0, 0), book.MustLookup('b'))
	require.Equal(t, MakeCode(0, 1), book.MustLookup(EndMarker))

	_, found := book.Lookup('c')
	require.False(t, found)
	_, found = book.Lookup(InternalMarker)
	require.False(t, found)
	require.Panics(t, func() { book.MustLookup('c') })

	expectDump := strings.Join([]string{
		"CodeBook{\n",
		"\tLookup('a') = \"1\"\n",
		"\tLookup('b') = \"00\"\n",
		"\tLookup(EOF) = \"01\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = book.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeBook_SingleLeaf(t *testing.T) {
	tree := BuildTree(SymbolTable{EndMarker: 1})
	defer tree.Release()

	book := NewCodeBook(tree)
	require.Equal(t, 1, book.Len())
	hc := book.MustLookup(EndMarker)
	require.Equal(t, 0, hc.Len())
	require.Equal(t, "\"\"", hc.String())
}

func TestCodeBook_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 100; iter++ {
		table := randomTable(rng)
		if len(table) < 2 {
			continue
		}

		tree := BuildTree(table)
		book := NewCodeBook(tree)
		require.Equal(t, tree.Leaves(), book.Len())
		tree.Release()

		symbols := book.Symbols()
		require.Len(t, symbols, len(table))
		for _, a := range symbols {
			ca := book.MustLookup(a)
			require.NotZero(t, ca.Len())
			for _, b := range symbols {
				if a == b {
					continue
				}
				cb := book.MustLookup(b)
				require.False(t, cb.HasPrefix(ca), "%v=%s is a prefix of %v=%s", a, ca, b, cb)
			}
		}
	}
}

func TestCodeBook_MaximalDepth(t *testing.T) {
	// Doubling weights force a maximally unbalanced tree: each merged node
	// ties with the next leaf and nothing else is lighter.
	table := SymbolTable{0: 1, EndMarker: 1}
	for sym := Symbol(1); sym < 63; sym++ {
		table[sym] = 1 << uint(sym)
	}

	tree := BuildTree(table)
	defer tree.Release()

	book := NewCodeBook(tree)
	require.Equal(t, len(table)-1, tree.Height())
	require.Equal(t, uint64(1)<<63, tree.Weight(tree.Root()))

	var longest int
	for _, sym := range book.Symbols() {
		if n := book.MustLookup(sym).Len(); n > longest {
			longest = n
		}
	}
	require.Equal(t, tree.Height(), longest)
}

func TestCode(t *testing.T) {
	hc := MakeCode(1, 0, 1, 1)
	require.Equal(t, 4, hc.Len())
	require.Equal(t, byte(1), hc.Bit(0))
	require.Equal(t, byte(0), hc.Bit(1))
	require.Equal(t, "\"1011\"", hc.String())
	require.True(t, hc.HasPrefix(MakeCode(1, 0)))
	require.True(t, hc.HasPrefix(Code{}))
	require.False(t, hc.HasPrefix(MakeCode(1, 1)))
	require.False(t, MakeCode(1).HasPrefix(hc))
	require.Panics(t, func() { hc.Bit(4) })

	var long Code
	for i := 0; i < MaxCodeSize; i++ {
		long = long.Append(byte(i % 2))
	}
	require.Equal(t, MaxCodeSize, long.Len())
	require.Equal(t, byte(1), long.Bit(MaxCodeSize-1))
	require.Panics(t, func() { long.Append(0) })
}
