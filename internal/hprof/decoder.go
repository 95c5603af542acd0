package hprof

import (
	"encoding/binary"
	"fmt"
	"io"
)

const headerLookahead = 4096

// Decoder is the public façade: a single read(channel, visitor) entry point
// over a decoder instance that owns its three named scratch buffers and a
// small-buffer pool. A Decoder is stateful and must not be used
// concurrently on more than one stream at a time; build a separate Decoder
// per concurrently-processed stream via Builder.
type Decoder struct {
	byteOrder binary.ByteOrder
	stack     *scratchBuffer
	strbuf    *scratchBuffer
	instance  *scratchBuffer
	pool      *bufferPool
}

// Read decodes one complete hprof stream from r, invoking one method on v
// per logical record in stream order, until HEAP_DUMP_END or clean end of
// stream. Any error aborts decoding immediately; the decoder makes exactly
// one visitor call per record and never calls a visitor method after an
// error has been raised.
func (d *Decoder) Read(r io.Reader, v Visitor) error {
	idw, rest, err := d.parseHeader(r, v)
	if err != nil {
		return err
	}

	ds := newDataStream(newPrependBufferedReader(rest, r), d.byteOrder, smallBufferSize)

	for {
		has, err := ds.hasRemaining()
		if err != nil {
			return err
		}
		if !has {
			return nil
		}

		hdr := d.pool.borrow()
		err = ds.readBulk(hdr[:9])
		if err != nil {
			d.pool.release(hdr)
			return fmt.Errorf("reading outer record header: %w", err)
		}
		tag := RecordTag(hdr[0])
		length := d.byteOrder.Uint32(hdr[5:9])
		d.pool.release(hdr)

		switch tag {
		case TagString:
			if err := parseStringRecord(ds, idw, d.byteOrder, d.strbuf, length, v); err != nil {
				return fmt.Errorf("parsing STRING record: %w", err)
			}
		case TagLoadClass:
			if err := parseLoadClassRecord(ds, idw, d.byteOrder, d.pool, v); err != nil {
				return fmt.Errorf("parsing LOAD_CLASS record: %w", err)
			}
		case TagStackFrame:
			if err := parseStackFrameRecord(ds, idw, d.byteOrder, d.pool, v); err != nil {
				return fmt.Errorf("parsing STACK_FRAME record: %w", err)
			}
		case TagStackTrace:
			if err := parseStackTraceRecord(ds, idw, d.byteOrder, d.stack, v); err != nil {
				return fmt.Errorf("parsing STACK_TRACE record: %w", err)
			}
		case TagHeapDump:
			if err := d.readHeapDump(ds, idw, int(length), v); err != nil {
				return fmt.Errorf("parsing HEAP_DUMP record: %w", err)
			}
		case TagHeapDumpEnd:
			if length != 0 {
				return formatErrorf(byte(tag), "HEAP_DUMP_END must have zero length, got %d", length)
			}
			return nil
		default:
			return formatErrorf(byte(tag), "unrecognised outer record tag")
		}
	}
}

// readHeapDump carves a length-framed sub-channel out of ds's current
// position (which may already hold bytes read ahead past this record's
// boundary), builds a fresh dataStream over it that fills on demand, and runs the inner
// heap-dump decoder. Bytes the frame never consumed out of ds's lookahead
// are handed back to ds afterward so the outer loop can resume from exactly
// where the frame left off, regardless of how short or long the underlying
// channel's reads happened to be.
func (d *Decoder) readHeapDump(ds *dataStream, idw id, length int, v Visitor) error {
	leftover := append([]byte(nil), ds.buf[ds.pos:ds.end]...)
	ds.pos, ds.end = 0, 0

	carryover := newPrependBufferedReader(leftover, ds.src)
	framed := newLengthFramedReader(carryover, length)
	inner := newDataStream(framed, d.byteOrder, smallBufferSize)

	if err := decodeHeapDump(inner, idw, d.byteOrder, d.instance, v); err != nil {
		return err
	}
	if !framed.drained() {
		return formatError("heap dump sub-record decoding left bytes unconsumed in the frame")
	}

	ds.src = carryover
	return nil
}

// parseHeader fills the eager lookahead (reading until 4 KiB are buffered or
// the stream ends), parses the ASCII
// header string, identifier size, and timestamp out of it, invokes
// VisitHeader, and returns the frozen identifier descriptor plus whatever
// trailing bytes from the lookahead were not part of the header so they can
// be prepended back in front of the raw stream for the outer loop.
func (d *Decoder) parseHeader(r io.Reader, v Visitor) (id, []byte, error) {
	buf := make([]byte, headerLookahead)
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			if err == io.EOF {
				break
			}
			return id{}, nil, fmt.Errorf("reading header: %w", &IOError{Err: err})
		}
		if m == 0 {
			break
		}
	}
	pending := buf[:n]

	nulIdx := -1
	for i, b := range pending {
		if b == 0 {
			nulIdx = i
			break
		}
	}
	if nulIdx < 0 {
		return id{}, nil, formatError("header is missing its NUL-terminated format string")
	}
	format := string(pending[:nulIdx])

	off := nulIdx + 1
	if len(pending) < off+4+8 {
		return id{}, nil, &TruncationError{Required: off + 4 + 8, Available: len(pending)}
	}
	idSize := d.byteOrder.Uint32(pending[off : off+4])
	off += 4
	timestamp := d.byteOrder.Uint64(pending[off : off+8])
	off += 8

	idw, err := newID(idSize)
	if err != nil {
		return id{}, nil, err
	}

	if err := v.VisitHeader(format, idw.size, timestamp); err != nil {
		return id{}, nil, &VisitorError{Method: "VisitHeader", Err: err}
	}

	return idw, pending[off:], nil
}
