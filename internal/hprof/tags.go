package hprof

import "fmt"

// RecordTag is the u1 tag byte of an outer, top-level record.
type RecordTag byte

const (
	TagString      RecordTag = 0x01
	TagLoadClass    RecordTag = 0x02
	TagStackFrame   RecordTag = 0x04
	TagStackTrace   RecordTag = 0x05
	TagHeapDump     RecordTag = 0x1C // also known as HEAP_DUMP_SEGMENT
	TagHeapDumpEnd  RecordTag = 0x2C
)

func (t RecordTag) String() string {
	switch t {
	case TagString:
		return "STRING"
	case TagLoadClass:
		return "LOAD_CLASS"
	case TagStackFrame:
		return "STACK_FRAME"
	case TagStackTrace:
		return "STACK_TRACE"
	case TagHeapDump:
		return "HEAP_DUMP"
	case TagHeapDumpEnd:
		return "HEAP_DUMP_END"
	default:
		return fmt.Sprintf("RecordTag(0x%02X)", byte(t))
	}
}

// HeapTag is the u1 tag byte of a sub-record nested inside a HEAP_DUMP frame.
type HeapTag byte

const (
	HeapTagRootUnknown     HeapTag = 0xFF
	HeapTagRootJNIGlobal    HeapTag = 0x01
	HeapTagRootJNILocal     HeapTag = 0x02
	HeapTagRootJavaFrame    HeapTag = 0x03
	HeapTagRootNativeStack  HeapTag = 0x04
	HeapTagRootStickyClass  HeapTag = 0x05
	HeapTagRootThreadBlock  HeapTag = 0x06
	HeapTagRootMonitorUsed  HeapTag = 0x07
	HeapTagRootThreadObject HeapTag = 0x08
	HeapTagClassDump        HeapTag = 0x20
	HeapTagInstanceDump     HeapTag = 0x21
	HeapTagObjectArrayDump  HeapTag = 0x22
	HeapTagPrimArrayDump    HeapTag = 0x23
)

func (t HeapTag) String() string {
	switch t {
	case HeapTagRootUnknown:
		return "ROOT_UNKNOWN"
	case HeapTagRootJNIGlobal:
		return "ROOT_JNI_GLOBAL"
	case HeapTagRootJNILocal:
		return "ROOT_JNI_LOCAL"
	case HeapTagRootJavaFrame:
		return "ROOT_JAVA_FRAME"
	case HeapTagRootNativeStack:
		return "ROOT_NATIVE_STACK"
	case HeapTagRootStickyClass:
		return "ROOT_STICKY_CLASS"
	case HeapTagRootThreadBlock:
		return "ROOT_THREAD_BLOCK"
	case HeapTagRootMonitorUsed:
		return "ROOT_MONITOR_USED"
	case HeapTagRootThreadObject:
		return "ROOT_THREAD_OBJECT"
	case HeapTagClassDump:
		return "CLASS_DUMP"
	case HeapTagInstanceDump:
		return "INSTANCE_DUMP"
	case HeapTagObjectArrayDump:
		return "OBJECT_ARRAY_DUMP"
	case HeapTagPrimArrayDump:
		return "PRIMITIVE_ARRAY_DUMP"
	default:
		return fmt.Sprintf("HeapTag(0x%02X)", byte(t))
	}
}

// BasicType is the u1 type byte used inside class dumps and primitive arrays.
type BasicType byte

const (
	BasicObject  BasicType = 2
	BasicBoolean BasicType = 4
	BasicChar    BasicType = 5
	BasicFloat   BasicType = 6
	BasicDouble  BasicType = 7
	BasicByte    BasicType = 8
	BasicShort   BasicType = 9
	BasicInt     BasicType = 10
	BasicLong    BasicType = 11
)

func (t BasicType) String() string {
	switch t {
	case BasicObject:
		return "OBJECT"
	case BasicBoolean:
		return "BOOLEAN"
	case BasicChar:
		return "CHAR"
	case BasicFloat:
		return "FLOAT"
	case BasicDouble:
		return "DOUBLE"
	case BasicByte:
		return "BYTE"
	case BasicShort:
		return "SHORT"
	case BasicInt:
		return "INT"
	case BasicLong:
		return "LONG"
	default:
		return fmt.Sprintf("BasicType(0x%02X)", byte(t))
	}
}

// Size returns the on-wire byte width of a value of this type, given the
// identifier width in effect for the stream (relevant only for OBJECT).
// Size returns 0 for an unrecognised type.
func (t BasicType) Size(idSize int) int {
	switch t {
	case BasicBoolean, BasicByte:
		return 1
	case BasicChar, BasicShort:
		return 2
	case BasicFloat, BasicInt:
		return 4
	case BasicDouble, BasicLong:
		return 8
	case BasicObject:
		return idSize
	default:
		return 0
	}
}
