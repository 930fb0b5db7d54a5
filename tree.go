package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses a node inside a Tree.
type NodeID int32

// NoNode is the child index stored by leaves.
const NoNode = NodeID(-1)

type node struct {
	symbol Symbol
	weight uint64
	zero   NodeID
	one    NodeID
}

// Tree is a binary prefix-code tree.  Its nodes live in a single arena owned
// by the Tree and are released together by Release.
//
// Every internal node has exactly two children; leaves are labeled with a
// Symbol in [0, EndMarker] and internal nodes with InternalMarker.
type Tree struct {
	nodes []node
	root  NodeID
}

// BuildTree runs the greedy Huffman merge over the given table and returns the
// resulting Tree.  The table must not be empty.
//
// Nodes of equal weight are merged in a fixed order: leaves before internal
// nodes, leaves by ascending symbol, and internal nodes by creation order.
// The first node removed becomes the zero-branch child and the second becomes
// the one-branch child.
//
func BuildTree(table SymbolTable) *Tree {
	assert.Assertf(len(table) != 0, "BuildTree called with an empty SymbolTable")
	assert.Assertf(len(table) <= maxLeaves, "SymbolTable has %d entries, max %d", len(table), maxLeaves)

	t := &Tree{nodes: make([]node, 0, 2*len(table)-1)}

	h := nodeHeap{tree: t, list: make([]NodeID, 0, len(table))}
	for _, sym := range table.Symbols() {
		assert.Assertf(sym.IsLeaf(), "symbol %d cannot label a leaf", int32(sym))
		h.list = append(h.list, t.add(node{symbol: sym, weight: table[sym], zero: NoNode, one: NoNode}))
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		parent := t.add(node{
			symbol: InternalMarker,
			weight: saturatingAdd(t.nodes[a].weight, t.nodes[b].weight),
			zero:   a,
			one:    b,
		})
		heap.Push(&h, parent)
	}

	t.root = heap.Pop(&h).(NodeID)
	return t
}

func (t *Tree) add(n node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

func (t *Tree) get(id NodeID) *node {
	assert.Assertf(t.nodes != nil, "use of released Tree")
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return &t.nodes[id]
}

// Release frees every node of this Tree.  It is safe to call more than once;
// any other method called afterward panics.
func (t *Tree) Release() {
	t.nodes = nil
	t.root = NoNode
}

// Released returns true iff Release has been called.
func (t *Tree) Released() bool {
	return t.nodes == nil
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	assert.Assertf(t.nodes != nil, "use of released Tree")
	return t.root
}

// Len returns the total number of nodes, leaves and internal nodes alike.
func (t *Tree) Len() int {
	assert.Assertf(t.nodes != nil, "use of released Tree")
	return len(t.nodes)
}

// Leaves returns the number of leaves.
func (t *Tree) Leaves() int {
	// A full binary tree with n leaves has n-1 internal nodes.
	return (t.Len() + 1) / 2
}

// IsLeaf returns true iff id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.get(id).symbol != InternalMarker
}

// Symbol returns the symbol labeling id: a leaf symbol or InternalMarker.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.get(id).symbol
}

// Weight returns the weight of id.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.get(id).weight
}

// Zero returns the zero-branch child of id, or NoNode for a leaf.
func (t *Tree) Zero(id NodeID) NodeID {
	return t.get(id).zero
}

// One returns the one-branch child of id, or NoNode for a leaf.
func (t *Tree) One(id NodeID) NodeID {
	return t.get(id).one
}

// Child returns the child of id selected by bit.
func (t *Tree) Child(id NodeID, bit byte) NodeID {
	n := t.get(id)
	if bit == 0 {
		return n.zero
	}
	return n.one
}

// Height returns the number of edges on the longest root-to-leaf path.
func (t *Tree) Height() int {
	var height int
	t.walk(func(id NodeID, depth int) {
		if t.nodes[id].symbol != InternalMarker && depth > height {
			height = depth
		}
	})
	return height
}

// walk visits every node in pre-order, zero branch first, using an explicit
// stack.
func (t *Tree) walk(fn func(id NodeID, depth int)) {
	type stackItem struct {
		id    NodeID
		depth int
	}

	root := t.Root()
	stack := make([]stackItem, 1, 16)
	stack[0] = stackItem{root, 0}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(top.id, top.depth)

		n := &t.nodes[top.id]
		if n.symbol == InternalMarker {
			stack = append(stack, stackItem{n.one, top.depth + 1}, stackItem{n.zero, top.depth + 1})
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(id NodeID, depth int) {
		n := &t.nodes[id]
		for i := 0; i <= depth; i++ {
			buf.WriteByte('\t')
		}
		if n.symbol == InternalMarker {
			fmt.Fprintf(&buf, "[%d] weight=%d\n", id, n.weight)
		} else {
			fmt.Fprintf(&buf, "[%d] %v weight=%d\n", id, n.symbol, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by weight, then by order key.  Leaves are created before any
// internal node, in ascending symbol order, so the NodeID is the order key.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
