package hprof

import "fmt"

// recordingVisitor implements Visitor by stringifying every call it
// receives, in order, so tests can assert on exact call sequences without
// hand-rolling a distinct mock type per scenario.
type recordingVisitor struct {
	calls []string
	// failOn, if set, makes the named method return failErr instead of
	// recording the call, to exercise visitor-error propagation.
	failOn  string
	failErr error
}

func (r *recordingVisitor) record(method string, args ...any) error {
	if r.failOn == method {
		return r.failErr
	}
	r.calls = append(r.calls, fmt.Sprintf("%s(%v)", method, args))
	return nil
}

func (r *recordingVisitor) VisitHeader(format string, idSize int, timestampMillis uint64) error {
	return r.record("VisitHeader", format, idSize, timestampMillis)
}

func (r *recordingVisitor) VisitString(id uint64, text string) error {
	return r.record("VisitString", id, text)
}

func (r *recordingVisitor) VisitLoadClass(classSerial uint32, classObjectID uint64, stackSerial uint32, nameID uint64) error {
	return r.record("VisitLoadClass", classSerial, classObjectID, stackSerial, nameID)
}

func (r *recordingVisitor) VisitStackFrame(frameID, methodNameID, methodSigID, sourceID uint64, classSerial uint32, lineNumber int32) error {
	return r.record("VisitStackFrame", frameID, methodNameID, methodSigID, sourceID, classSerial, lineNumber)
}

func (r *recordingVisitor) VisitStackTrace(stackSerial, threadSerial uint32, frameIDs []uint64) error {
	return r.record("VisitStackTrace", stackSerial, threadSerial, frameIDs)
}

func (r *recordingVisitor) VisitRootUnknown(objectID uint64) error {
	return r.record("VisitRootUnknown", objectID)
}

func (r *recordingVisitor) VisitRootJNIGlobal(objectID, jniGlobalRefID uint64) error {
	return r.record("VisitRootJNIGlobal", objectID, jniGlobalRefID)
}

func (r *recordingVisitor) VisitRootJNILocal(objectID uint64, threadSerial, frameNumber uint32) error {
	return r.record("VisitRootJNILocal", objectID, threadSerial, frameNumber)
}

func (r *recordingVisitor) VisitRootJavaFrame(objectID uint64, threadSerial, frameNumber uint32) error {
	return r.record("VisitRootJavaFrame", objectID, threadSerial, frameNumber)
}

func (r *recordingVisitor) VisitRootNativeStack(objectID uint64, threadSerial uint32) error {
	return r.record("VisitRootNativeStack", objectID, threadSerial)
}

func (r *recordingVisitor) VisitRootStickyClass(objectID uint64) error {
	return r.record("VisitRootStickyClass", objectID)
}

func (r *recordingVisitor) VisitRootThreadBlock(objectID uint64, threadSerial uint32) error {
	return r.record("VisitRootThreadBlock", objectID, threadSerial)
}

func (r *recordingVisitor) VisitRootMonitorUsed(objectID uint64) error {
	return r.record("VisitRootMonitorUsed", objectID)
}

func (r *recordingVisitor) VisitRootThreadObject(threadObjectID uint64, threadSerial, stackTraceSerial uint32) error {
	return r.record("VisitRootThreadObject", threadObjectID, threadSerial, stackTraceSerial)
}

func (r *recordingVisitor) VisitClassHeader(classObjectID uint64, stackSerial uint32, superClassObjectID, classLoaderObjectID, signerObjectID, protectionDomainObjectID uint64, instanceSize uint32) error {
	return r.record("VisitClassHeader", classObjectID, stackSerial, superClassObjectID, classLoaderObjectID, signerObjectID, protectionDomainObjectID, instanceSize)
}

func (r *recordingVisitor) VisitClassConstantObject(index uint16, value uint64) error {
	return r.record("VisitClassConstantObject", index, value)
}
func (r *recordingVisitor) VisitClassConstantBoolean(index uint16, value bool) error {
	return r.record("VisitClassConstantBoolean", index, value)
}
func (r *recordingVisitor) VisitClassConstantChar(index uint16, value uint16) error {
	return r.record("VisitClassConstantChar", index, value)
}
func (r *recordingVisitor) VisitClassConstantFloat(index uint16, value float32) error {
	return r.record("VisitClassConstantFloat", index, value)
}
func (r *recordingVisitor) VisitClassConstantDouble(index uint16, value float64) error {
	return r.record("VisitClassConstantDouble", index, value)
}
func (r *recordingVisitor) VisitClassConstantByte(index uint16, value int8) error {
	return r.record("VisitClassConstantByte", index, value)
}
func (r *recordingVisitor) VisitClassConstantShort(index uint16, value int16) error {
	return r.record("VisitClassConstantShort", index, value)
}
func (r *recordingVisitor) VisitClassConstantInt(index uint16, value int32) error {
	return r.record("VisitClassConstantInt", index, value)
}
func (r *recordingVisitor) VisitClassConstantLong(index uint16, value int64) error {
	return r.record("VisitClassConstantLong", index, value)
}

func (r *recordingVisitor) VisitClassStaticObject(nameID uint64, value uint64) error {
	return r.record("VisitClassStaticObject", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticBoolean(nameID uint64, value bool) error {
	return r.record("VisitClassStaticBoolean", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticChar(nameID uint64, value uint16) error {
	return r.record("VisitClassStaticChar", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticFloat(nameID uint64, value float32) error {
	return r.record("VisitClassStaticFloat", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticDouble(nameID uint64, value float64) error {
	return r.record("VisitClassStaticDouble", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticByte(nameID uint64, value int8) error {
	return r.record("VisitClassStaticByte", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticShort(nameID uint64, value int16) error {
	return r.record("VisitClassStaticShort", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticInt(nameID uint64, value int32) error {
	return r.record("VisitClassStaticInt", nameID, value)
}
func (r *recordingVisitor) VisitClassStaticLong(nameID uint64, value int64) error {
	return r.record("VisitClassStaticLong", nameID, value)
}

func (r *recordingVisitor) VisitClassFieldObject(nameID uint64) error {
	return r.record("VisitClassFieldObject", nameID)
}
func (r *recordingVisitor) VisitClassFieldBoolean(nameID uint64) error {
	return r.record("VisitClassFieldBoolean", nameID)
}
func (r *recordingVisitor) VisitClassFieldChar(nameID uint64) error {
	return r.record("VisitClassFieldChar", nameID)
}
func (r *recordingVisitor) VisitClassFieldFloat(nameID uint64) error {
	return r.record("VisitClassFieldFloat", nameID)
}
func (r *recordingVisitor) VisitClassFieldDouble(nameID uint64) error {
	return r.record("VisitClassFieldDouble", nameID)
}
func (r *recordingVisitor) VisitClassFieldByte(nameID uint64) error {
	return r.record("VisitClassFieldByte", nameID)
}
func (r *recordingVisitor) VisitClassFieldShort(nameID uint64) error {
	return r.record("VisitClassFieldShort", nameID)
}
func (r *recordingVisitor) VisitClassFieldInt(nameID uint64) error {
	return r.record("VisitClassFieldInt", nameID)
}
func (r *recordingVisitor) VisitClassFieldLong(nameID uint64) error {
	return r.record("VisitClassFieldLong", nameID)
}

func (r *recordingVisitor) VisitInstance(objectID uint64, stackSerial uint32, classObjectID uint64, data []byte) error {
	cp := append([]byte(nil), data...)
	return r.record("VisitInstance", objectID, stackSerial, classObjectID, cp)
}

func (r *recordingVisitor) VisitObjectArray(objectID uint64, stackSerial uint32, elementClassObjectID uint64, elements []uint64) error {
	return r.record("VisitObjectArray", objectID, stackSerial, elementClassObjectID, elements)
}

func (r *recordingVisitor) VisitBooleanArray(objectID uint64, stackSerial uint32, elements []bool) error {
	return r.record("VisitBooleanArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitCharArray(objectID uint64, stackSerial uint32, elements []uint16) error {
	return r.record("VisitCharArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitFloatArray(objectID uint64, stackSerial uint32, elements []float32) error {
	return r.record("VisitFloatArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitDoubleArray(objectID uint64, stackSerial uint32, elements []float64) error {
	return r.record("VisitDoubleArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitByteArray(objectID uint64, stackSerial uint32, elements []int8) error {
	return r.record("VisitByteArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitShortArray(objectID uint64, stackSerial uint32, elements []int16) error {
	return r.record("VisitShortArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitIntArray(objectID uint64, stackSerial uint32, elements []int32) error {
	return r.record("VisitIntArray", objectID, stackSerial, elements)
}
func (r *recordingVisitor) VisitLongArray(objectID uint64, stackSerial uint32, elements []int64) error {
	return r.record("VisitLongArray", objectID, stackSerial, elements)
}
