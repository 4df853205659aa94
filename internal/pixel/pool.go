package pixel

import (
	"math/bits"
	"sync"
)

// Pool is a thread-safe pool of scratch byte buffers.
//
// Buffers are grouped by capacity class (the next power of two of the
// requested size), so a conversion of a 100x70 image and one of a 100x71
// image can share storage.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a buffer pool that keeps at most maxPerBucket buffers per
// capacity class. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// sizeClass returns the capacity class for n bytes.
func sizeClass(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Get returns a zeroed buffer of length n.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	class := sizeClass(n)

	p.mu.Lock()
	bucket := p.buckets[class]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[class] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf = buf[:n]
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n, class)
}

// Put returns a buffer obtained from Get. Buffers whose capacity is not a
// size class are dropped, which keeps slices of caller memory out.
func (p *Pool) Put(buf []byte) {
	c := cap(buf)
	if c == 0 || sizeClass(c) != c {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[c]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[c] = append(bucket, buf[:0])
}

// Len returns the number of buffers currently held.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

var defaultPool = NewPool(8)

// GetBuffer takes a zeroed buffer of length n from the default pool.
func GetBuffer(n int) []byte {
	return defaultPool.Get(n)
}

// PutBuffer hands a buffer back to the default pool.
func PutBuffer(buf []byte) {
	defaultPool.Put(buf)
}
