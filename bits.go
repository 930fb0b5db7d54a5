package hufftree

import (
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// BitReader is a source of bits.  ReadBit returns io.EOF once no bits remain.
type BitReader interface {
	ReadBit() (byte, error)
}

// BitWriter is a sink for bits, written in call order.
type BitWriter interface {
	WriteBit(bit byte) error
}

// BitString is an in-memory bit sequence.  It implements BitWriter by
// appending and BitReader by consuming from the front.
type BitString struct {
	words []uint64
	size  uint64
	pos   uint64
}

// ParseBitString parses a string of '0' and '1' characters.
func ParseBitString(s string) (*BitString, error) {
	bs := &BitString{}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bs.append(0)
		case '1':
			bs.append(1)
		default:
			return nil, fmt.Errorf("invalid character %q at index %d in bit string", s[i], i)
		}
	}
	return bs, nil
}

func (bs *BitString) append(bit byte) {
	i := bs.size
	if i%64 == 0 {
		bs.words = append(bs.words, 0)
	}
	if bit != 0 {
		bs.words[i/64] |= 1 << (i % 64)
	}
	bs.size++
}

// WriteBit appends one bit.
func (bs *BitString) WriteBit(bit byte) error {
	bs.append(bit)
	return nil
}

// ReadBit consumes one bit from the front.
func (bs *BitString) ReadBit() (byte, error) {
	if bs.pos >= bs.size {
		return 0, io.EOF
	}
	bit := bs.At(bs.pos)
	bs.pos++
	return bit, nil
}

// At returns the i'th bit.
func (bs *BitString) At(i uint64) byte {
	return byte(bs.words[i/64]>>(i%64)) & 1
}

// Len returns the total number of bits written.
func (bs *BitString) Len() uint64 {
	return bs.size
}

// Rewind resets the read position to the first bit.
func (bs *BitString) Rewind() {
	bs.pos = 0
}

// String returns the bits as a string of '0' and '1' characters.
func (bs *BitString) String() string {
	var sb strings.Builder
	sb.Grow(int(bs.size))
	for i := uint64(0); i < bs.size; i++ {
		sb.WriteByte('0' + bs.At(i))
	}
	return sb.String()
}

var (
	_ BitReader    = (*BitString)(nil)
	_ BitWriter    = (*BitString)(nil)
	_ fmt.Stringer = (*BitString)(nil)
)

// StreamBitReader reads bits from a byte stream, most significant bit first.
type StreamBitReader struct {
	r *bitio.Reader
}

// NewStreamBitReader wraps a byte stream.
func NewStreamBitReader(r io.Reader) *StreamBitReader {
	return &StreamBitReader{r: bitio.NewReader(r)}
}

// ReadBit reads one bit.  The final partial byte's padding is returned like
// any other bit; the Decoder never reaches it because it stops at EndMarker.
func (sr *StreamBitReader) ReadBit() (byte, error) {
	b, err := sr.r.ReadBool()
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

// StreamBitWriter writes bits to a byte stream, most significant bit first.
// Close must be called to pad and flush the final partial byte.
type StreamBitWriter struct {
	w *bitio.Writer
}

// NewStreamBitWriter wraps a byte stream.
func NewStreamBitWriter(w io.Writer) *StreamBitWriter {
	return &StreamBitWriter{w: bitio.NewWriter(w)}
}

// WriteBit writes one bit.
func (sw *StreamBitWriter) WriteBit(bit byte) error {
	return sw.w.WriteBool(bit != 0)
}

// Close pads the final partial byte with zero bits and flushes it.  It does
// not close the underlying stream.
func (sw *StreamBitWriter) Close() error {
	return sw.w.Close()
}

var (
	_ BitReader = (*StreamBitReader)(nil)
	_ BitWriter = (*StreamBitWriter)(nil)
	_ io.Closer = (*StreamBitWriter)(nil)
)
