package hprof

import (
	"encoding/binary"
	"io"
	"math"
)

// dataStream is a re-fillable pull reader over a small buffer on top of a
// channel. ensure refills by compaction whenever fewer than the requested
// number of bytes remain; every typed accessor calls ensure then extracts
// the value in the configured byte order.
//
// ensure assumes n never exceeds the buffer's capacity: the largest single
// primitive is 8 bytes and identifiers are at most 8 bytes, both far below
// the buffer size, so this never binds in practice. readBulk exists
// precisely for the cases (string payloads, stack-frame id arrays, instance
// data) where the caller needs more than that.
type dataStream struct {
	src       io.Reader
	order     binary.ByteOrder
	buf       []byte
	pos, end  int
	bytesRead int64
}

func newDataStream(src io.Reader, order binary.ByteOrder, bufSize int) *dataStream {
	return &dataStream{src: src, order: order, buf: make([]byte, bufSize)}
}

// ensure guarantees at least n bytes are available starting at pos,
// refilling from the channel as many times as needed. A short read that
// reaches end of stream before n bytes are available is a TruncationError;
// any other channel failure is an IOError.
func (ds *dataStream) ensure(n int) error {
	if ds.end-ds.pos >= n {
		return nil
	}
	if ds.pos > 0 {
		copy(ds.buf, ds.buf[ds.pos:ds.end])
		ds.end -= ds.pos
		ds.pos = 0
	}
	for ds.end < n {
		m, err := ds.src.Read(ds.buf[ds.end:])
		ds.end += m
		ds.bytesRead += int64(m)
		if ds.end >= n {
			break
		}
		if err != nil {
			if err == io.EOF {
				return &TruncationError{Required: n, Available: ds.end}
			}
			return &IOError{Err: err}
		}
		if m == 0 {
			return &TruncationError{Required: n, Available: ds.end}
		}
	}
	return nil
}

// hasRemaining reports whether at least one byte is available, attempting a
// single refill first. Unlike ensure, reaching end of stream here is not an
// error: it is how the inner heap-dump loop and the outer record loop detect
// clean termination at a record boundary.
func (ds *dataStream) hasRemaining() (bool, error) {
	if ds.end > ds.pos {
		return true, nil
	}
	ds.pos, ds.end = 0, 0
	m, err := ds.src.Read(ds.buf)
	ds.end = m
	ds.bytesRead += int64(m)
	if m > 0 {
		return true, nil
	}
	if err == nil || err == io.EOF {
		return false, nil
	}
	return false, &IOError{Err: err}
}

// readBulk fills dst completely, first draining any buffered bytes and then
// reading directly from the channel for the remainder, bypassing the
// internal buffer's capacity limit entirely. Used for payloads that can
// exceed the small internal buffer: string bodies, stack-frame identifier
// arrays, and instance data.
func (ds *dataStream) readBulk(dst []byte) error {
	total := 0
	if ds.pos < ds.end {
		n := copy(dst, ds.buf[ds.pos:ds.end])
		ds.pos += n
		total += n
	}
	for total < len(dst) {
		m, err := ds.src.Read(dst[total:])
		total += m
		ds.bytesRead += int64(m)
		if total >= len(dst) {
			break
		}
		if err != nil {
			if err == io.EOF {
				return &TruncationError{Required: len(dst), Available: total}
			}
			return &IOError{Err: err}
		}
		if m == 0 {
			return &TruncationError{Required: len(dst), Available: total}
		}
	}
	return nil
}

func (ds *dataStream) readU1() (uint8, error) {
	if err := ds.ensure(1); err != nil {
		return 0, err
	}
	v := ds.buf[ds.pos]
	ds.pos++
	return v, nil
}

func (ds *dataStream) readU2() (uint16, error) {
	if err := ds.ensure(2); err != nil {
		return 0, err
	}
	v := ds.order.Uint16(ds.buf[ds.pos:])
	ds.pos += 2
	return v, nil
}

func (ds *dataStream) readU4() (uint32, error) {
	if err := ds.ensure(4); err != nil {
		return 0, err
	}
	v := ds.order.Uint32(ds.buf[ds.pos:])
	ds.pos += 4
	return v, nil
}

func (ds *dataStream) readU8() (uint64, error) {
	if err := ds.ensure(8); err != nil {
		return 0, err
	}
	v := ds.order.Uint64(ds.buf[ds.pos:])
	ds.pos += 8
	return v, nil
}

func (ds *dataStream) readI4() (int32, error) {
	v, err := ds.readU4()
	return int32(v), err
}

// readBoolean reads a single byte: zero is false, any nonzero is true. This
// goes through the same ensure() as every other accessor, which is the fix
// for a documented bug elsewhere: a boolean read must refill exactly when no
// byte is currently available, never the other way round.
func (ds *dataStream) readBoolean() (bool, error) {
	v, err := ds.readU1()
	return v != 0, err
}

// readChar reads a 16-bit UTF-16 code unit, not a byte.
func (ds *dataStream) readChar() (uint16, error) {
	return ds.readU2()
}

func (ds *dataStream) readFloat32() (float32, error) {
	v, err := ds.readU4()
	return math.Float32frombits(v), err
}

func (ds *dataStream) readFloat64() (float64, error) {
	v, err := ds.readU8()
	return math.Float64frombits(v), err
}

func (ds *dataStream) readID(w id) (uint64, error) {
	return w.read(ds)
}

// remainingInFrame reports how many bytes are left to consume before the
// enclosing length-framed heap-dump sub-stream is exhausted: bytes already
// pulled into the internal buffer but not yet read, plus whatever the frame
// itself has not yet delivered. It returns false when ds is not backed by a
// length-framed source (the outer record loop has no such bound). Used to
// refuse pre-allocating array lengths that could not possibly fit.
func (ds *dataStream) remainingInFrame() (int, bool) {
	lf, ok := ds.src.(*lengthFramedReader)
	if !ok {
		return 0, false
	}
	return (ds.end - ds.pos) + lf.remaining, true
}
