package hprof

import (
	"encoding/binary"
	"fmt"
)

// id is the frozen identifier-width descriptor derived once from the header.
// Every object/class/loader/field-name identifier in the stream is read
// through it and reported as an unsigned 64-bit value, zero-extended when
// the stream declares 4-byte identifiers.
type id struct {
	size int // 4 or 8
}

func newID(identifierSize uint32) (id, error) {
	switch identifierSize {
	case 4, 8:
		return id{size: int(identifierSize)}, nil
	default:
		return id{}, formatErrorf(0, "illegal identifier size %d", identifierSize)
	}
}

func (w id) read(ds *dataStream) (uint64, error) {
	if w.size == 4 {
		v, err := ds.readU4()
		return uint64(v), err
	}
	return ds.readU8()
}

// decode interprets a raw id.size-byte slice in the given byte order. Used
// where an identifier sits inside a chunk already read in bulk (STRING,
// LOAD_CLASS, STACK_FRAME payloads) rather than through a dataStream.
func (w id) decode(order binary.ByteOrder, data []byte) uint64 {
	if w.size == 4 {
		return uint64(order.Uint32(data))
	}
	return order.Uint64(data)
}

// String is for debugging/error messages only.
func (w id) String() string {
	return fmt.Sprintf("id%d", w.size*8)
}
