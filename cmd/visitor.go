package cmd

import "github.com/mabhi256/hprofdecoder/internal/hprof"

// summaryVisitor tallies record counts and byte totals instead of
// materialising anything; it exists to drive `dump` and `validate` without
// pulling the whole decoded stream into memory.
type summaryVisitor struct {
	format string
	idSize int

	strings       int
	loadClasses   int
	stackFrames   int
	stackTraces   int
	roots         int
	classDumps    int
	instances     int
	arrays        int
	instanceBytes int64
}

var _ hprof.Visitor = (*summaryVisitor)(nil)

func (s *summaryVisitor) VisitHeader(format string, idSize int, timestampMillis uint64) error {
	s.format = format
	s.idSize = idSize
	return nil
}

func (s *summaryVisitor) VisitString(id uint64, text string) error {
	s.strings++
	return nil
}

func (s *summaryVisitor) VisitLoadClass(classSerial uint32, classObjectID uint64, stackSerial uint32, nameID uint64) error {
	s.loadClasses++
	return nil
}

func (s *summaryVisitor) VisitStackFrame(frameID, methodNameID, methodSigID, sourceID uint64, classSerial uint32, lineNumber int32) error {
	s.stackFrames++
	return nil
}

func (s *summaryVisitor) VisitStackTrace(stackSerial, threadSerial uint32, frameIDs []uint64) error {
	s.stackTraces++
	return nil
}

func (s *summaryVisitor) VisitRootUnknown(objectID uint64) error                      { s.roots++; return nil }
func (s *summaryVisitor) VisitRootJNIGlobal(objectID, jniGlobalRefID uint64) error     { s.roots++; return nil }
func (s *summaryVisitor) VisitRootJNILocal(objectID uint64, threadSerial, frameNumber uint32) error {
	s.roots++
	return nil
}
func (s *summaryVisitor) VisitRootJavaFrame(objectID uint64, threadSerial, frameNumber uint32) error {
	s.roots++
	return nil
}
func (s *summaryVisitor) VisitRootNativeStack(objectID uint64, threadSerial uint32) error {
	s.roots++
	return nil
}
func (s *summaryVisitor) VisitRootStickyClass(objectID uint64) error { s.roots++; return nil }
func (s *summaryVisitor) VisitRootThreadBlock(objectID uint64, threadSerial uint32) error {
	s.roots++
	return nil
}
func (s *summaryVisitor) VisitRootMonitorUsed(objectID uint64) error { s.roots++; return nil }
func (s *summaryVisitor) VisitRootThreadObject(threadObjectID uint64, threadSerial, stackTraceSerial uint32) error {
	s.roots++
	return nil
}

func (s *summaryVisitor) VisitClassHeader(classObjectID uint64, stackSerial uint32, superClassObjectID, classLoaderObjectID, signerObjectID, protectionDomainObjectID uint64, instanceSize uint32) error {
	s.classDumps++
	return nil
}

func (s *summaryVisitor) VisitClassConstantObject(index uint16, value uint64) error  { return nil }
func (s *summaryVisitor) VisitClassConstantBoolean(index uint16, value bool) error   { return nil }
func (s *summaryVisitor) VisitClassConstantChar(index uint16, value uint16) error    { return nil }
func (s *summaryVisitor) VisitClassConstantFloat(index uint16, value float32) error  { return nil }
func (s *summaryVisitor) VisitClassConstantDouble(index uint16, value float64) error { return nil }
func (s *summaryVisitor) VisitClassConstantByte(index uint16, value int8) error      { return nil }
func (s *summaryVisitor) VisitClassConstantShort(index uint16, value int16) error    { return nil }
func (s *summaryVisitor) VisitClassConstantInt(index uint16, value int32) error      { return nil }
func (s *summaryVisitor) VisitClassConstantLong(index uint16, value int64) error     { return nil }

func (s *summaryVisitor) VisitClassStaticObject(nameID uint64, value uint64) error   { return nil }
func (s *summaryVisitor) VisitClassStaticBoolean(nameID uint64, value bool) error    { return nil }
func (s *summaryVisitor) VisitClassStaticChar(nameID uint64, value uint16) error     { return nil }
func (s *summaryVisitor) VisitClassStaticFloat(nameID uint64, value float32) error   { return nil }
func (s *summaryVisitor) VisitClassStaticDouble(nameID uint64, value float64) error  { return nil }
func (s *summaryVisitor) VisitClassStaticByte(nameID uint64, value int8) error       { return nil }
func (s *summaryVisitor) VisitClassStaticShort(nameID uint64, value int16) error     { return nil }
func (s *summaryVisitor) VisitClassStaticInt(nameID uint64, value int32) error       { return nil }
func (s *summaryVisitor) VisitClassStaticLong(nameID uint64, value int64) error      { return nil }

func (s *summaryVisitor) VisitClassFieldObject(nameID uint64) error  { return nil }
func (s *summaryVisitor) VisitClassFieldBoolean(nameID uint64) error { return nil }
func (s *summaryVisitor) VisitClassFieldChar(nameID uint64) error    { return nil }
func (s *summaryVisitor) VisitClassFieldFloat(nameID uint64) error   { return nil }
func (s *summaryVisitor) VisitClassFieldDouble(nameID uint64) error  { return nil }
func (s *summaryVisitor) VisitClassFieldByte(nameID uint64) error    { return nil }
func (s *summaryVisitor) VisitClassFieldShort(nameID uint64) error   { return nil }
func (s *summaryVisitor) VisitClassFieldInt(nameID uint64) error     { return nil }
func (s *summaryVisitor) VisitClassFieldLong(nameID uint64) error    { return nil }

func (s *summaryVisitor) VisitInstance(objectID uint64, stackSerial uint32, classObjectID uint64, data []byte) error {
	s.instances++
	s.instanceBytes += int64(len(data))
	return nil
}

func (s *summaryVisitor) VisitObjectArray(objectID uint64, stackSerial uint32, elementClassObjectID uint64, elements []uint64) error {
	s.arrays++
	return nil
}

func (s *summaryVisitor) VisitBooleanArray(objectID uint64, stackSerial uint32, elements []bool) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitCharArray(objectID uint64, stackSerial uint32, elements []uint16) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitFloatArray(objectID uint64, stackSerial uint32, elements []float32) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitDoubleArray(objectID uint64, stackSerial uint32, elements []float64) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitByteArray(objectID uint64, stackSerial uint32, elements []int8) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitShortArray(objectID uint64, stackSerial uint32, elements []int16) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitIntArray(objectID uint64, stackSerial uint32, elements []int32) error {
	s.arrays++
	return nil
}
func (s *summaryVisitor) VisitLongArray(objectID uint64, stackSerial uint32, elements []int64) error {
	s.arrays++
	return nil
}
