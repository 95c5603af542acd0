package hprof

/*
parseInstanceDump parses an INSTANCE_DUMP sub-record, the packed field
bytes of one object instance:

	id    object_id
	u4    stack_trace_serial_number
	id    class_object_id
	u4    instance_data_size (bytes)
	[u1]* instance_data, instance_data_size bytes

The instance_data bytes are copied into the decoder's instance scratch
buffer and handed to the visitor by reference; the slice is only valid for
the duration of the VisitInstance call.
*/
func parseInstanceDump(ds *dataStream, idw id, instance *scratchBuffer, v Visitor) error {
	objectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	stackSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	classObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	size, err := ds.readU4()
	if err != nil {
		return err
	}

	if rem, ok := ds.remainingInFrame(); ok && int(size) > rem {
		return formatErrorf(0, "instance data size %d exceeds %d bytes remaining in heap dump frame", size, rem)
	}

	data, err := instance.get(int(size))
	if err != nil {
		return err
	}
	if err := ds.readBulk(data); err != nil {
		return err
	}

	return visitErr("VisitInstance", v.VisitInstance(objectID, stackSerial, classObjectID, data))
}
