package hprof

import "fmt"

/*
parseClassDump parses a CLASS_DUMP sub-record, the full definition of one
loaded class:

	id    class_object_id
	u4    stack_trace_serial_number
	id    super_class_object_id (0 for java.lang.Object)
	id    class_loader_object_id (0 for the bootstrap loader)
	id    signers_object_id (usually 0)
	id    protection_domain_object_id (usually 0)
	id    reserved (always 0, read and discarded)
	id    reserved (always 0, read and discarded)
	u4    instance_size_bytes

	u2                     constant_pool_count
	[constant_pool_entry]* constant_pool_count entries

	u2               static_field_count
	[static_field]*  static_field_count entries

	u2                 instance_field_count
	[instance_field]*  instance_field_count entries

constant_pool_entry := u2 index, u1 type, value (size depends on type)
static_field        := id name_id, u1 type, value (size depends on type)
instance_field      := id name_id, u1 type (no value; values live in the
                        matching INSTANCE_DUMP record)
*/
func parseClassDump(ds *dataStream, idw id, v Visitor) error {
	classObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	stackSerial, err := ds.readU4()
	if err != nil {
		return err
	}
	superClassObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	classLoaderObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	signerObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	protectionDomainObjectID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	if _, err := ds.readID(idw); err != nil { // reserved1
		return err
	}
	if _, err := ds.readID(idw); err != nil { // reserved2
		return err
	}
	instanceSize, err := ds.readU4()
	if err != nil {
		return err
	}

	if err := visitErr("VisitClassHeader", v.VisitClassHeader(
		classObjectID, stackSerial, superClassObjectID, classLoaderObjectID,
		signerObjectID, protectionDomainObjectID, instanceSize)); err != nil {
		return err
	}

	constantCount, err := ds.readU2()
	if err != nil {
		return err
	}
	for i := uint16(0); i < constantCount; i++ {
		if err := parseClassConstant(ds, idw, v); err != nil {
			return fmt.Errorf("constant pool entry %d: %w", i, err)
		}
	}

	staticCount, err := ds.readU2()
	if err != nil {
		return err
	}
	for i := uint16(0); i < staticCount; i++ {
		if err := parseClassStatic(ds, idw, v); err != nil {
			return fmt.Errorf("static field %d: %w", i, err)
		}
	}

	fieldCount, err := ds.readU2()
	if err != nil {
		return err
	}
	for i := uint16(0); i < fieldCount; i++ {
		if err := parseClassField(ds, idw, v); err != nil {
			return fmt.Errorf("instance field %d: %w", i, err)
		}
	}

	return nil
}

func parseClassConstant(ds *dataStream, idw id, v Visitor) error {
	index, err := ds.readU2()
	if err != nil {
		return err
	}
	typeByte, err := ds.readU1()
	if err != nil {
		return err
	}

	switch BasicType(typeByte) {
	case BasicObject:
		val, err := ds.readID(idw)
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantObject", v.VisitClassConstantObject(index, val))
	case BasicBoolean:
		val, err := ds.readBoolean()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantBoolean", v.VisitClassConstantBoolean(index, val))
	case BasicChar:
		val, err := ds.readChar()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantChar", v.VisitClassConstantChar(index, val))
	case BasicFloat:
		val, err := ds.readFloat32()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantFloat", v.VisitClassConstantFloat(index, val))
	case BasicDouble:
		val, err := ds.readFloat64()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantDouble", v.VisitClassConstantDouble(index, val))
	case BasicByte:
		val, err := ds.readU1()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantByte", v.VisitClassConstantByte(index, int8(val)))
	case BasicShort:
		val, err := ds.readU2()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantShort", v.VisitClassConstantShort(index, int16(val)))
	case BasicInt:
		val, err := ds.readI4()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantInt", v.VisitClassConstantInt(index, val))
	case BasicLong:
		val, err := ds.readU8()
		if err != nil {
			return err
		}
		return visitErr("VisitClassConstantLong", v.VisitClassConstantLong(index, int64(val)))
	default:
		return formatErrorf(typeByte, "unrecognised basic type in constant pool entry")
	}
}

func parseClassStatic(ds *dataStream, idw id, v Visitor) error {
	nameID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	typeByte, err := ds.readU1()
	if err != nil {
		return err
	}

	switch BasicType(typeByte) {
	case BasicObject:
		val, err := ds.readID(idw)
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticObject", v.VisitClassStaticObject(nameID, val))
	case BasicBoolean:
		val, err := ds.readBoolean()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticBoolean", v.VisitClassStaticBoolean(nameID, val))
	case BasicChar:
		val, err := ds.readChar()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticChar", v.VisitClassStaticChar(nameID, val))
	case BasicFloat:
		val, err := ds.readFloat32()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticFloat", v.VisitClassStaticFloat(nameID, val))
	case BasicDouble:
		val, err := ds.readFloat64()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticDouble", v.VisitClassStaticDouble(nameID, val))
	case BasicByte:
		// Read as a signed byte, not a float; see the note on
		// Visitor.VisitClassStaticByte.
		val, err := ds.readU1()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticByte", v.VisitClassStaticByte(nameID, int8(val)))
	case BasicShort:
		val, err := ds.readU2()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticShort", v.VisitClassStaticShort(nameID, int16(val)))
	case BasicInt:
		val, err := ds.readI4()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticInt", v.VisitClassStaticInt(nameID, val))
	case BasicLong:
		val, err := ds.readU8()
		if err != nil {
			return err
		}
		return visitErr("VisitClassStaticLong", v.VisitClassStaticLong(nameID, int64(val)))
	default:
		return formatErrorf(typeByte, "unrecognised basic type in static field")
	}
}

func parseClassField(ds *dataStream, idw id, v Visitor) error {
	nameID, err := ds.readID(idw)
	if err != nil {
		return err
	}
	typeByte, err := ds.readU1()
	if err != nil {
		return err
	}

	switch BasicType(typeByte) {
	case BasicObject:
		return visitErr("VisitClassFieldObject", v.VisitClassFieldObject(nameID))
	case BasicBoolean:
		return visitErr("VisitClassFieldBoolean", v.VisitClassFieldBoolean(nameID))
	case BasicChar:
		return visitErr("VisitClassFieldChar", v.VisitClassFieldChar(nameID))
	case BasicFloat:
		return visitErr("VisitClassFieldFloat", v.VisitClassFieldFloat(nameID))
	case BasicDouble:
		return visitErr("VisitClassFieldDouble", v.VisitClassFieldDouble(nameID))
	case BasicByte:
		return visitErr("VisitClassFieldByte", v.VisitClassFieldByte(nameID))
	case BasicShort:
		return visitErr("VisitClassFieldShort", v.VisitClassFieldShort(nameID))
	case BasicInt:
		return visitErr("VisitClassFieldInt", v.VisitClassFieldInt(nameID))
	case BasicLong:
		return visitErr("VisitClassFieldLong", v.VisitClassFieldLong(nameID))
	default:
		return formatErrorf(typeByte, "unrecognised basic type in instance field declaration")
	}
}
