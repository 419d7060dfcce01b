package inst

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader is the decode cursor over one instruction stream. The offset only
// moves forward, by exactly the length of each decoded instruction.
type Reader struct {
	data []byte
	off  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset is the index of the next unconsumed byte.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of unconsumed bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.off
}

func (r *Reader) Done() bool {
	return r.off >= len(r.data)
}

func (r *Reader) need(n int) error {
	if r.Len() < n {
		return fmt.Errorf("read %d bytes at offset %d: %w", n, r.off, io.ErrUnexpectedEOF)
	}
	return nil
}

func (r *Reader) peek() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.data[r.off], nil
}

func (r *Reader) nextByte() (byte, error) {
	b, err := r.peek()
	if err != nil {
		return 0, err
	}
	r.off++
	return b, nil
}

func (r *Reader) nextInt8() (int16, error) {
	b, err := r.nextByte()
	return int16(int8(b)), err
}

// nextInt16 reads a little-endian word.
func (r *Reader) nextInt16() (int16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return int16(v), nil
}

func (r *Reader) nextSized(size OpSize) (int16, error) {
	if size == OpWord {
		return r.nextInt16()
	}
	return r.nextInt8()
}
