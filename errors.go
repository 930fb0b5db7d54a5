package hufftree

import (
	"errors"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrTruncated         = errors.New("truncated or corrupt bit stream: no end marker")
	ErrDegenerateTree    = errors.New("degenerate Huffman tree: single leaf is not the end marker")
	ErrInvalidTable      = errors.New("invalid symbol table")
	ErrUnknownSymbol     = errors.New("symbol has no codeword")
)
