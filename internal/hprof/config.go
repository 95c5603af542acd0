package hprof

import "encoding/binary"

const defaultBufferMax = 65536

// Builder collects configuration before constructing a Decoder. A zero-value
// Builder applies the same defaults as NewBuilder (Build substitutes them for
// an unset byte order and for any maximum left at 0); NewBuilder exists so
// call sites read the same way the teacher's option-collecting constructors do.
type Builder struct {
	byteOrder          binary.ByteOrder
	maxStackBufferCap  int
	maxStringBufferCap int
	maxInstanceBufCap  int
}

// NewBuilder returns a Builder initialised with the documented defaults:
// big-endian byte order and 64 KiB maxima for the stack, string, and
// instance scratch buffers.
func NewBuilder() *Builder {
	return &Builder{
		byteOrder:          binary.BigEndian,
		maxStackBufferCap:  defaultBufferMax,
		maxStringBufferCap: defaultBufferMax,
		maxInstanceBufCap:  defaultBufferMax,
	}
}

// ByteOrder overrides the default big-endian wire order. HotSpot always
// emits big-endian dumps; little-endian support exists for the property
// tests in §8 and for reading tool-generated fixtures.
func (b *Builder) ByteOrder(order binary.ByteOrder) *Builder {
	b.byteOrder = order
	return b
}

// MaxStackBufferCapacity bounds the stack-frame-identifier scratch buffer
// used by STACK_TRACE records.
func (b *Builder) MaxStackBufferCapacity(n int) *Builder {
	b.maxStackBufferCap = n
	return b
}

// MaxStringBufferCapacity bounds the scratch buffer used by STRING records.
func (b *Builder) MaxStringBufferCapacity(n int) *Builder {
	b.maxStringBufferCap = n
	return b
}

// MaxInstanceBufferCapacity bounds the scratch buffer aliased into
// Visitor.VisitInstance.
func (b *Builder) MaxInstanceBufferCapacity(n int) *Builder {
	b.maxInstanceBufCap = n
	return b
}

// Build constructs a ready-to-use Decoder. The returned Decoder owns its
// named buffers and is not safe for concurrent use on multiple streams;
// build a separate Decoder per stream processed concurrently.
func (b *Builder) Build() *Decoder {
	order := b.byteOrder
	if order == nil {
		order = binary.BigEndian
	}
	stackMax, stringMax, instanceMax := b.maxStackBufferCap, b.maxStringBufferCap, b.maxInstanceBufCap
	if stackMax == 0 {
		stackMax = defaultBufferMax
	}
	if stringMax == 0 {
		stringMax = defaultBufferMax
	}
	if instanceMax == 0 {
		instanceMax = defaultBufferMax
	}
	return &Decoder{
		byteOrder: order,
		stack:     newScratchBuffer("stack", stackMax),
		strbuf:    newScratchBuffer("string", stringMax),
		instance:  newScratchBuffer("instance", instanceMax),
		pool:      newBufferPool(),
	}
}
