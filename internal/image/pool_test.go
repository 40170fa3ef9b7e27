package image

import (
	"sync"
	"testing"
)

func TestPool_GetPut_Basic(t *testing.T) {
	pool := NewPool(4)

	buf1 := pool.Get(100, 100)
	if buf1 == nil {
		t.Fatal("Get returned nil")
	}
	if buf1.Width() != 100 || buf1.Height() != 100 {
		t.Errorf("got dimensions %dx%d, want 100x100", buf1.Width(), buf1.Height())
	}

	fill(buf1, 1, 2, 3, 4)
	pool.Put(buf1)
	if n := len(pool.buckets[poolKey{100, 100}]); n != 1 {
		t.Errorf("idle buffers = %d, want 1", n)
	}

	buf2 := pool.Get(100, 100)
	if buf2 != buf1 {
		t.Error("Get should reuse the pooled buffer")
	}
	if r, g, b, a := pixelAt(buf2, 50, 50); r|g|b|a != 0 {
		t.Error("reused buffer should be cleared")
	}
}

func TestPool_GetPut_DifferentSizes(t *testing.T) {
	pool := NewPool(4)

	small := pool.Get(10, 10)
	pool.Put(small)

	large := pool.Get(20, 20)
	if large == small {
		t.Error("buffers of different size must not be shared")
	}
	if large.Width() != 20 {
		t.Errorf("Width() = %d, want 20", large.Width())
	}
}

func TestPool_MaxSize(t *testing.T) {
	pool := NewPool(2)

	for i := 0; i < 5; i++ {
		buf, _ := NewPixelBuffer(8, 8)
		pool.Put(buf)
	}
	if n := len(pool.buckets[poolKey{8, 8}]); n != 2 {
		t.Errorf("idle buffers = %d, want 2", n)
	}
}

func TestPool_Put_Nil(t *testing.T) {
	pool := NewPool(2)
	pool.Put(nil)
	if len(pool.buckets) != 0 {
		t.Error("Put(nil) should not create a bucket")
	}
}

func TestPool_GetInvalidDimensions(t *testing.T) {
	pool := NewPool(2)
	if buf := pool.Get(0, 10); buf != nil {
		t.Error("Get(0, 10) should return nil")
	}
}

func TestDefaultPool(t *testing.T) {
	buf := GetFromDefault(16, 16)
	if buf == nil {
		t.Fatal("GetFromDefault returned nil")
	}
	PutToDefault(buf)
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(8)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				buf := pool.Get(32, 32)
				if buf == nil {
					t.Error("Get returned nil")
					return
				}
				fill(buf, 255, 0, 0, 255)
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPool_GetPut(b *testing.B) {
	pool := NewPool(8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := pool.Get(256, 256)
		pool.Put(buf)
	}
}
