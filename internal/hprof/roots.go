package hprof

/*
parseRootUnknown parses a ROOT_UNKNOWN sub-record, an object of unknown
root type:

	id    object_id
*/
func parseRootUnknown(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	return visitErr("VisitRootUnknown", v.VisitRootUnknown(objectID))
}

/*
parseRootJNIGlobal parses a ROOT_JNI_GLOBAL sub-record, a global JNI
reference held by native code:

	id    object_id
	id    jni_global_ref_id
*/
func parseRootJNIGlobal(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	refID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	return visitErr("VisitRootJNIGlobal", v.VisitRootJNIGlobal(objectID, refID))
}

/*
parseRootJNILocal parses a ROOT_JNI_LOCAL sub-record, a local JNI reference
from a specific stack frame:

	id    object_id
	u4    thread_serial_number
	u4    frame_number (-1 for empty/unknown frame)
*/
func parseRootJNILocal(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	threadSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	frameNumber, err := ds.readU4()
	if err != nil {
		return err
	}
	return visitErr("VisitRootJNILocal", v.VisitRootJNILocal(objectID, threadSerial, frameNumber))
}

/*
parseRootJavaFrame parses a ROOT_JAVA_FRAME sub-record, a local variable or
parameter live in a Java stack frame:

	id    object_id
	u4    thread_serial_number
	u4    frame_number (-1 for empty/unknown frame)
*/
func parseRootJavaFrame(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	threadSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	frameNumber, err := ds.readU4()
	if err != nil {
		return err
	}
	return visitErr("VisitRootJavaFrame", v.VisitRootJavaFrame(objectID, threadSerial, frameNumber))
}

/*
parseRootNativeStack parses a ROOT_NATIVE_STACK sub-record, an object
referenced from a thread's native stack:

	id    object_id
	u4    thread_serial_number
*/
func parseRootNativeStack(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	threadSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	return visitErr("VisitRootNativeStack", v.VisitRootNativeStack(objectID, threadSerial))
}

/*
parseRootStickyClass parses a ROOT_STICKY_CLASS sub-record, a class that
cannot be unloaded:

	id    object_id
*/
func parseRootStickyClass(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	return visitErr("VisitRootStickyClass", v.VisitRootStickyClass(objectID))
}

/*
parseRootThreadBlock parses a ROOT_THREAD_BLOCK sub-record, an object being
waited on by a thread:

	id    object_id
	u4    thread_serial_number
*/
func parseRootThreadBlock(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	threadSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	return visitErr("VisitRootThreadBlock", v.VisitRootThreadBlock(objectID, threadSerial))
}

/*
parseRootMonitorUsed parses a ROOT_MONITOR_USED sub-record, an object with
an associated monitor:

	id    object_id
*/
func parseRootMonitorUsed(ds *dataStream, idw id, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	return visitErr("VisitRootMonitorUsed", v.VisitRootMonitorUsed(objectID))
}

/*
parseRootThreadObject parses a ROOT_THREAD_OBJ sub-record, the thread
object itself, linking a java.lang.Thread instance to its stack trace:

	id    thread_object_id (may be 0 for threads attached only via JNI)
	u4    thread_serial_number
	u4    stack_trace_serial_number
*/
func parseRootThreadObject(ds *dataStream, idw id, v Visitor) error {
	threadObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	threadSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	stackSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	return visitErr("VisitRootThreadObject", v.VisitRootThreadObject(threadObjectID, threadSerial, stackSerial))
}

func visitErr(method string, err error) error {
	if err == nil {
		return nil
	}
	return &VisitorError{Method: method, Err: err}
}
