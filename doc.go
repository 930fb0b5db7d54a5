// Package hufftree implements tree-walking Huffman coding over a byte
// alphabet extended with a reserved end-marker symbol.
//
// A compression pass counts symbols into a SymbolTable, greedily merges the
// two lightest nodes until a single Tree remains, derives a CodeBook from the
// tree's root-to-leaf paths, and finally streams codewords through an Encoder.
// A Tree keeps its nodes in one index-addressed arena.
// The Decoder walks the same Tree bit by bit and stops at the end-marker
// leaf, so the encoded stream carries its own length.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
