// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SPSC is a single-producer single-consumer bounded queue.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's last-observed head, and vice versa, so
// the common case touches only its own cursor, not the other side's.
//
// Both cursors have no need for per-slot sequence numbers — with exactly
// one producer and one consumer, head and tail alone fully describe which
// slots are live.
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // consumer reads from here
	_          pad
	cachedTail uint64 // consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // producer writes here
	_          pad
	cachedHead uint64 // producer's cached view of head
	_          pad
	buffer     []T
	capacity   uint64
}

// NewSPSC creates a new SPSC queue of the given capacity.
// Returns [ErrInvalidCapacity] if capacity <= 0.
func NewSPSC[T any](capacity int) (*SPSC[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &SPSC[T]{
		buffer:   alignedSlots[T](capacity),
		capacity: uint64(capacity),
	}, nil
}

// TryPush adds an element (producer only).
// Returns false if the queue is full.
func (q *SPSC[T]) TryPush(v T) bool {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead >= q.capacity {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead >= q.capacity {
			return false
		}
	}
	q.buffer[tail%q.capacity] = v
	q.tail.StoreRelease(tail + 1)
	return true
}

// TryPop removes and returns an element (consumer only).
// Returns (zero-value, false) if the queue is empty.
func (q *SPSC[T]) TryPop() (T, bool) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, false
		}
	}
	slot := &q.buffer[head%q.capacity]
	v := *slot
	var zero T
	*slot = zero
	q.head.StoreRelease(head + 1)
	return v, true
}

// TryPushBatch adds as many of src as fit without blocking.
func (q *SPSC[T]) TryPushBatch(src []T) int {
	if len(src) == 0 {
		return 0
	}
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadAcquire()
	free := head + q.capacity - tail
	if free == 0 {
		return 0
	}
	n := uint64(len(src))
	if n > free {
		n = free
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[(tail+i)%q.capacity] = src[i]
	}
	q.tail.StoreRelease(tail + n)
	return int(n)
}

// TryPopBatch fills as much of dst as is available without blocking.
func (q *SPSC[T]) TryPopBatch(dst []T) int {
	if len(dst) == 0 {
		return 0
	}
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	avail := tail - head
	if avail == 0 {
		return 0
	}
	n := uint64(len(dst))
	if n > avail {
		n = avail
	}
	for i := uint64(0); i < n; i++ {
		slot := &q.buffer[(head+i)%q.capacity]
		dst[i] = *slot
		var zero T
		*slot = zero
	}
	q.head.StoreRelease(head + n)
	return int(n)
}

// Push adds v, cooperatively yielding until the queue accepts it.
func (q *SPSC[T]) Push(v T) {
	sw := spin.Wait{}
	for !q.TryPush(v) {
		sw.Once()
	}
}

// Pop removes and returns an element, cooperatively yielding until one is
// available.
func (q *SPSC[T]) Pop() T {
	sw := spin.Wait{}
	for {
		if v, ok := q.TryPop(); ok {
			return v
		}
		sw.Once()
	}
}

// PushBatch adds every element of src, yielding between partial batches.
func (q *SPSC[T]) PushBatch(src []T) {
	sw := spin.Wait{}
	for len(src) > 0 {
		n := q.TryPushBatch(src)
		if n == 0 {
			sw.Once()
			continue
		}
		src = src[n:]
		sw = spin.Wait{}
	}
}

// PopBatch fills dst completely, yielding between partial batches.
func (q *SPSC[T]) PopBatch(dst []T) {
	sw := spin.Wait{}
	for len(dst) > 0 {
		n := q.TryPopBatch(dst)
		if n == 0 {
			sw.Once()
			continue
		}
		dst = dst[n:]
		sw = spin.Wait{}
	}
}

// Size returns an approximate live-element count.
func (q *SPSC[T]) Size() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity)
}

// Empty reports whether the queue currently holds no elements.
func (q *SPSC[T]) Empty() bool {
	return q.Size() == 0
}

// Close destructs every currently live element. The caller must ensure no
// producer or consumer is active.
func (q *SPSC[T]) Close() {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	for ; head < tail; head++ {
		destroy(&q.buffer[head%q.capacity])
	}
}
