package hprof

// Visitor receives exactly one call per decoded logical record, in stream
// order. A Visitor may reject the input by returning a non-nil error, which
// aborts decoding and propagates out of Decoder.Read wrapped in a
// VisitorError.
//
// Every multi-byte value has already been converted to the configured byte
// order; identifiers are always reported as unsigned 64-bit values,
// zero-extended when the stream declares 4-byte identifiers.
//
// The instance byte slice passed to VisitInstance is borrowed: it aliases
// the decoder's own instance scratch buffer and is only valid for the
// duration of the call. Every other slice (the stack-frame id array, string
// text, array element slices) is owned by the callee to keep afterward.
type Visitor interface {
	VisitHeader(format string, idSize int, timestampMillis uint64) error

	VisitString(id uint64, text string) error
	VisitLoadClass(classSerial uint32, classObjectID uint64, stackSerial uint32, nameID uint64) error
	VisitStackFrame(frameID, methodNameID, methodSigID, sourceID uint64, classSerial uint32, lineNumber int32) error
	VisitStackTrace(stackSerial, threadSerial uint32, frameIDs []uint64) error

	VisitRootUnknown(objectID uint64) error
	VisitRootJNIGlobal(objectID, jniGlobalRefID uint64) error
	VisitRootJNILocal(objectID uint64, threadSerial, frameNumber uint32) error
	VisitRootJavaFrame(objectID uint64, threadSerial, frameNumber uint32) error
	VisitRootNativeStack(objectID uint64, threadSerial uint32) error
	VisitRootStickyClass(objectID uint64) error
	VisitRootThreadBlock(objectID uint64, threadSerial uint32) error
	VisitRootMonitorUsed(objectID uint64) error
	VisitRootThreadObject(threadObjectID uint64, threadSerial, stackTraceSerial uint32) error

	VisitClassHeader(classObjectID uint64, stackSerial uint32, superClassObjectID, classLoaderObjectID, signerObjectID, protectionDomainObjectID uint64, instanceSize uint32) error

	VisitClassConstantObject(index uint16, value uint64) error
	VisitClassConstantBoolean(index uint16, value bool) error
	VisitClassConstantChar(index uint16, value uint16) error
	VisitClassConstantFloat(index uint16, value float32) error
	VisitClassConstantDouble(index uint16, value float64) error
	VisitClassConstantByte(index uint16, value int8) error
	VisitClassConstantShort(index uint16, value int16) error
	VisitClassConstantInt(index uint16, value int32) error
	VisitClassConstantLong(index uint16, value int64) error

	VisitClassStaticObject(nameID uint64, value uint64) error
	VisitClassStaticBoolean(nameID uint64, value bool) error
	VisitClassStaticChar(nameID uint64, value uint16) error
	VisitClassStaticFloat(nameID uint64, value float32) error
	VisitClassStaticDouble(nameID uint64, value float64) error
	// VisitClassStaticByte carries a byte value. The source this decoder is
	// modelled on declares the analogous callback with a float parameter,
	// which does not match what the decoder actually reads off the wire;
	// this is corrected here.
	VisitClassStaticByte(nameID uint64, value int8) error
	VisitClassStaticShort(nameID uint64, value int16) error
	VisitClassStaticInt(nameID uint64, value int32) error
	VisitClassStaticLong(nameID uint64, value int64) error

	VisitClassFieldObject(nameID uint64) error
	VisitClassFieldBoolean(nameID uint64) error
	VisitClassFieldChar(nameID uint64) error
	VisitClassFieldFloat(nameID uint64) error
	VisitClassFieldDouble(nameID uint64) error
	VisitClassFieldByte(nameID uint64) error
	VisitClassFieldShort(nameID uint64) error
	VisitClassFieldInt(nameID uint64) error
	VisitClassFieldLong(nameID uint64) error

	VisitInstance(objectID uint64, stackSerial uint32, classObjectID uint64, data []byte) error
	VisitObjectArray(objectID uint64, stackSerial uint32, elementClassObjectID uint64, elements []uint64) error

	VisitBooleanArray(objectID uint64, stackSerial uint32, elements []bool) error
	VisitCharArray(objectID uint64, stackSerial uint32, elements []uint16) error
	VisitFloatArray(objectID uint64, stackSerial uint32, elements []float32) error
	VisitDoubleArray(objectID uint64, stackSerial uint32, elements []float64) error
	VisitByteArray(objectID uint64, stackSerial uint32, elements []int8) error
	VisitShortArray(objectID uint64, stackSerial uint32, elements []int16) error
	VisitIntArray(objectID uint64, stackSerial uint32, elements []int32) error
	VisitLongArray(objectID uint64, stackSerial uint32, elements []int64) error
}
