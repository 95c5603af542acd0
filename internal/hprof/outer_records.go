package hprof

import (
	"encoding/binary"
	"fmt"
)

/*
parseStringRecord parses a STRING outer record:

	id        Identifier this string is known by in later records
	[u1]*     UTF-8 text, filling out the remainder of the record

The payload is read in one bulk copy into the string scratch buffer, then
split into the leading identifier and the trailing UTF-8 text.
*/
func parseStringRecord(ds *dataStream, idw id, order binary.ByteOrder, strbuf *scratchBuffer, length uint32, v Visitor) error {
	if int(length) < idw.size {
		return formatError("STRING record shorter than one identifier")
	}
	buf, err := strbuf.get(int(length))
	if err != nil {
		return err
	}
	if err := ds.readBulk(buf); err != nil {
		return fmt.Errorf("reading string payload: %w", err)
	}

	stringID := idw.decode(order, buf[:idw.size])
	text := string(buf[idw.size:])

	if err := v.VisitString(stringID, text); err != nil {
		return &VisitorError{Method: "VisitString", Err: err}
	}
	return nil
}

/*
parseLoadClassRecord parses a LOAD_CLASS outer record:

	u4    class_serial_number
	id    class_object_id
	u4    stack_trace_serial_number
	id    class_name_string_id
*/
func parseLoadClassRecord(ds *dataStream, idw id, order binary.ByteOrder, pool *bufferPool, v Visitor) error {
	need := 2*idw.size + 8
	raw := pool.borrow()
	defer pool.release(raw)
	buf := raw[:need]
	if err := ds.readBulk(buf); err != nil {
		return fmt.Errorf("reading LOAD_CLASS body: %w", err)
	}

	off := 0
	classSerial := order.Uint32(buf[off:])
	off += 4
	classObjectID := idw.decode(order, buf[off:])
	off += idw.size
	stackSerial := order.Uint32(buf[off:])
	off += 4
	nameID := idw.decode(order, buf[off:])

	if err := v.VisitLoadClass(classSerial, classObjectID, stackSerial, nameID); err != nil {
		return &VisitorError{Method: "VisitLoadClass", Err: err}
	}
	return nil
}

/*
parseStackFrameRecord parses a STACK_FRAME outer record:

	id    stack_frame_id
	id    method_name_string_id
	id    method_signature_string_id
	id    source_file_name_string_id
	u4    class_serial_number
	i4    line_number (-1 unknown, -2 compiled, -3 native)
*/
func parseStackFrameRecord(ds *dataStream, idw id, order binary.ByteOrder, pool *bufferPool, v Visitor) error {
	need := 4*idw.size + 8
	raw := pool.borrow()
	defer pool.release(raw)
	buf := raw[:need]
	if err := ds.readBulk(buf); err != nil {
		return fmt.Errorf("reading STACK_FRAME body: %w", err)
	}

	off := 0
	frameID := idw.decode(order, buf[off:])
	off += idw.size
	methodNameID := idw.decode(order, buf[off:])
	off += idw.size
	methodSigID := idw.decode(order, buf[off:])
	off += idw.size
	sourceID := idw.decode(order, buf[off:])
	off += idw.size
	classSerial := order.Uint32(buf[off:])
	off += 4
	lineNumber := int32(order.Uint32(buf[off:]))

	if err := v.VisitStackFrame(frameID, methodNameID, methodSigID, sourceID, classSerial, lineNumber); err != nil {
		return &VisitorError{Method: "VisitStackFrame", Err: err}
	}
	return nil
}

/*
parseStackTraceRecord parses a STACK_TRACE outer record:

	u4      stack_trace_serial_number
	u4      thread_serial_number
	u4      number_of_frames
	[id]*   frame_ids, number_of_frames entries
*/
func parseStackTraceRecord(ds *dataStream, idw id, order binary.ByteOrder, stack *scratchBuffer, v Visitor) error {
	head := make([]byte, 12)
	if err := ds.readBulk(head); err != nil {
		return fmt.Errorf("reading STACK_TRACE header: %w", err)
	}
	stackSerial := order.Uint32(head[0:4])
	threadSerial := order.Uint32(head[4:8])
	frameCount := order.Uint32(head[8:12])

	size := int(frameCount) * idw.size
	buf, err := stack.get(size)
	if err != nil {
		return err
	}
	if err := ds.readBulk(buf); err != nil {
		return fmt.Errorf("reading STACK_TRACE frame ids: %w", err)
	}

	frameIDs := make([]uint64, frameCount)
	for i := range frameIDs {
		frameIDs[i] = idw.decode(order, buf[i*idw.size:])
	}

	if err := v.VisitStackTrace(stackSerial, threadSerial, frameIDs); err != nil {
		return &VisitorError{Method: "VisitStackTrace", Err: err}
	}
	return nil
}
