package hprof

import (
	"encoding/binary"
	"fmt"
)

/*
decodeHeapDump runs the inner loop over a length-framed sub-stream carved
out of a HEAP_DUMP outer record. It reads one sub-record tag at a time and
dispatches to the matching parser until the frame reports no bytes
remaining. An unrecognised sub-record tag is a format error; this decoder
never falls back to skipping unknown sub-records.
*/
func decodeHeapDump(ds *dataStream, idw id, order binary.ByteOrder, instance *scratchBuffer, v Visitor) error {
	for {
		has, err := ds.hasRemaining()
		if err != nil {
			return err
		}
		if !has {
			return nil
		}

		tagByte, err := ds.readU1()
		if err != nil {
			return fmt.Errorf("reading heap sub-record tag: %w", err)
		}
		tag := HeapTag(tagByte)

		switch tag {
		case HeapTagRootUnknown:
			err = parseRootUnknown(ds, idw, v)
		case HeapTagRootJNIGlobal:
			err = parseRootJNIGlobal(ds, idw, v)
		case HeapTagRootJNILocal:
			err = parseRootJNILocal(ds, idw, v)
		case HeapTagRootJavaFrame:
			err = parseRootJavaFrame(ds, idw, v)
		case HeapTagRootNativeStack:
			err = parseRootNativeStack(ds, idw, v)
		case HeapTagRootStickyClass:
			err = parseRootStickyClass(ds, idw, v)
		case HeapTagRootThreadBlock:
			err = parseRootThreadBlock(ds, idw, v)
		case HeapTagRootMonitorUsed:
			err = parseRootMonitorUsed(ds, idw, v)
		case HeapTagRootThreadObject:
			err = parseRootThreadObject(ds, idw, v)
		case HeapTagClassDump:
			err = parseClassDump(ds, idw, v)
		case HeapTagInstanceDump:
			err = parseInstanceDump(ds, idw, instance, v)
		case HeapTagObjectArrayDump:
			err = parseObjectArrayDump(ds, idw, order, v)
		case HeapTagPrimArrayDump:
			err = parsePrimitiveArrayDump(ds, idw, order, v)
		default:
			return formatErrorf(tagByte, "unrecognised heap record tag")
		}
		if err != nil {
			return fmt.Errorf("parsing %s: %w", tag, err)
		}
	}
}
