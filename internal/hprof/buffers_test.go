package hprof

import "testing"

func TestScratchBuffer_PreallocatesOnConstruction(t *testing.T) {
	s := newScratchBuffer("test", 1<<20)
	if cap(s.buf) != preallocSize {
		t.Fatalf("cap(s.buf) = %d, want %d (preallocated before any get())", cap(s.buf), preallocSize)
	}

	small := newScratchBuffer("test", 100)
	if cap(small.buf) != 100 {
		t.Fatalf("cap(small.buf) = %d, want 100 (max below the preallocation floor)", cap(small.buf))
	}
}

func TestScratchBuffer_GrowsToNextPowerOfTwo(t *testing.T) {
	s := newScratchBuffer("test", 1<<20)
	buf, err := s.get(preallocSize + 10)
	if err != nil {
		t.Fatalf("get(%d): %v", preallocSize+10, err)
	}
	if len(buf) != preallocSize+10 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), preallocSize+10)
	}
	if want := nextPowerOfTwo(preallocSize + 10); cap(s.buf) != want {
		t.Fatalf("cap(s.buf) = %d, want %d", cap(s.buf), want)
	}
}

func TestScratchBuffer_ReusesCapacity(t *testing.T) {
	s := newScratchBuffer("test", 1<<20)
	first, _ := s.get(100)
	backing := cap(s.buf)
	_ = first
	second, err := s.get(50)
	if err != nil {
		t.Fatalf("get(50): %v", err)
	}
	if cap(s.buf) != backing {
		t.Fatalf("buffer was reallocated for a smaller request: cap = %d, want %d", cap(s.buf), backing)
	}
	if len(second) != 50 {
		t.Fatalf("len(second) = %d, want 50", len(second))
	}
}

func TestScratchBuffer_RefusesBeyondMax(t *testing.T) {
	s := newScratchBuffer("string", 100)
	_, err := s.get(200)
	if err == nil {
		t.Fatal("expected a ResourceError, got nil")
	}
	re, ok := err.(*ResourceError)
	if !ok {
		t.Fatalf("error = %v (%T), want *ResourceError", err, err)
	}
	if re.Buffer != "string" || re.Requested != 200 || re.MaxCapacity != 100 {
		t.Fatalf("ResourceError = %+v", re)
	}
}

func TestScratchBuffer_CappedAtMaxEvenWhenRounding(t *testing.T) {
	// 100 requested with max 100: nextPowerOfTwo(100) = 128, which exceeds
	// max, so the buffer must be capped at 100 rather than refused, since
	// the request itself fits.
	s := newScratchBuffer("test", 100)
	buf, err := s.get(100)
	if err != nil {
		t.Fatalf("get(100): %v", err)
	}
	if len(buf) != 100 {
		t.Fatalf("len(buf) = %d, want 100", len(buf))
	}
	if cap(s.buf) != 100 {
		t.Fatalf("cap(s.buf) = %d, want 100", cap(s.buf))
	}
}

func TestBufferPool_ReusesReleasedBuffers(t *testing.T) {
	p := newBufferPool()
	b1 := p.borrow()
	if len(b1) != smallBufferSize {
		t.Fatalf("len(b1) = %d, want %d", len(b1), smallBufferSize)
	}
	p.release(b1)
	b2 := p.borrow()
	if &b1[0] != &b2[0] {
		t.Fatal("borrow after release did not reuse the same backing array")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 16: 16, 17: 32}
	for n, want := range cases {
		if got := nextPowerOfTwo(n); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}
