package hprof

import (
	"encoding/binary"
	"math"
)

/*
parseObjectArrayDump parses an OBJECT_ARRAY_DUMP sub-record:

	id      array_object_id
	u4      stack_trace_serial_number
	u4      array_length (elements)
	id      array_element_class_object_id
	[id]*   array_length element object ids
*/
func parseObjectArrayDump(ds *dataStream, idw id, order binary.ByteOrder, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	stackSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	length, err := ds.readU4()
	if err != nil {
		return err
	}
	elementClassObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}

	if err := checkArrayFits(ds, int(length), idw.size); err != nil {
		return err
	}

	buf, err := readArrayBytes(ds, int(length)*idw.size)
	if err != nil {
		return err
	}

	elements := make([]uint64, length)
	for i := range elements {
		elements[i] = idw.decode(order, buf[i*idw.size:])
	}

	return visitErr("VisitObjectArray", v.VisitObjectArray(objectID, stackSerial, elementClassObjectID, elements))
}

/*
parsePrimitiveArrayDump parses a PRIMITIVE_ARRAY_DUMP sub-record:

	id      array_object_id
	u4      stack_trace_serial_number
	u4      array_length (elements)
	u1      element_type (BasicType; OBJECT is illegal here)
	[...]   array_length elements of element_type, each in the configured
	        byte order
*/
func parsePrimitiveArrayDump(ds *dataStream, idw id, order binary.ByteOrder, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	stackSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	length, err := ds.readU4()
	if err != nil {
		return err
	}
	typeByte, err := ds.readU1()
	if err != nil {
		return err
	}
	elemType := BasicType(typeByte)

	if elemType == BasicObject {
		return formatErrorf(typeByte, "OBJECT element type is not valid inside a primitive array")
	}
	elemSize := elemType.Size(idw.size)
	if elemSize == 0 {
		return formatErrorf(typeByte, "unrecognised basic type in primitive array")
	}

	if err := checkArrayFits(ds, int(length), elemSize); err != nil {
		return err
	}

	buf, err := readArrayBytes(ds, int(length)*elemSize)
	if err != nil {
		return err
	}

	switch elemType {
	case BasicBoolean:
		out := make([]bool, length)
		for i := range out {
			out[i] = buf[i] != 0
		}
		return visitErr("VisitBooleanArray", v.VisitBooleanArray(objectID, stackSerial, out))
	case BasicChar:
		out := make([]uint16, length)
		for i := range out {
			out[i] = order.Uint16(buf[i*2:])
		}
		return visitErr("VisitCharArray", v.VisitCharArray(objectID, stackSerial, out))
	case BasicFloat:
		out := make([]float32, length)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(buf[i*4:]))
		}
		return visitErr("VisitFloatArray", v.VisitFloatArray(objectID, stackSerial, out))
	case BasicDouble:
		out := make([]float64, length)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(buf[i*8:]))
		}
		return visitErr("VisitDoubleArray", v.VisitDoubleArray(objectID, stackSerial, out))
	case BasicByte:
		out := make([]int8, length)
		for i := range out {
			out[i] = int8(buf[i])
		}
		return visitErr("VisitByteArray", v.VisitByteArray(objectID, stackSerial, out))
	case BasicShort:
		out := make([]int16, length)
		for i := range out {
			out[i] = int16(order.Uint16(buf[i*2:]))
		}
		return visitErr("VisitShortArray", v.VisitShortArray(objectID, stackSerial, out))
	case BasicInt:
		out := make([]int32, length)
		for i := range out {
			out[i] = int32(order.Uint32(buf[i*4:]))
		}
		return visitErr("VisitIntArray", v.VisitIntArray(objectID, stackSerial, out))
	case BasicLong:
		out := make([]int64, length)
		for i := range out {
			out[i] = int64(order.Uint64(buf[i*8:]))
		}
		return visitErr("VisitLongArray", v.VisitLongArray(objectID, stackSerial, out))
	default:
		return formatErrorf(typeByte, "unrecognised basic type in primitive array")
	}
}

// checkArrayFits refuses to let length*elementSize exceed the bytes
// actually remaining in the enclosing heap-dump frame, so a corrupted or
// hostile length field cannot force a gigantic allocation before the
// decoder has even tried to read that many bytes.
func checkArrayFits(ds *dataStream, length, elementSize int) error {
	needed := length * elementSize
	if rem, ok := ds.remainingInFrame(); ok && needed > rem {
		return formatErrorf(0, "array of %d elements (%d bytes) exceeds %d bytes remaining in heap dump frame", length, needed, rem)
	}
	return nil
}

func readArrayBytes(ds *dataStream, size int) ([]byte, error) {
	buf := make([]byte, size)
	if err := ds.readBulk(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
