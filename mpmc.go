// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a multi-producer multi-consumer bounded queue.
//
// Both sides reserve one slot at a time with a CAS on their own cursor
// plus a per-slot sequence check — the classic Vyukov sequenced ring.
// TryPush and TryPop make a single attempt each: a lost CAS (another
// producer or consumer won the race this instant) returns false exactly
// like a full or empty queue, and it is the caller's decision whether to
// retry. Batch operations iterate the single-slot protocol and stop at
// the first failure; MPMC offers no batch-wide atomicity.
type MPMC[T any] struct {
	_        pad
	tail     atomix.Uint64 // producers CAS here, one slot at a time
	_        pad
	head     atomix.Uint64 // consumers CAS here, one slot at a time
	_        pad
	buffer   []T
	seq      []atomix.Uint64 // seq[s]: next position valid to publish/retire slot s
	capacity uint64
}

// NewMPMC creates a new MPMC queue of the given capacity.
// Returns [ErrInvalidCapacity] if capacity <= 0.
func NewMPMC[T any](capacity int) (*MPMC[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &MPMC[T]{
		buffer:   alignedSlots[T](capacity),
		seq:      alignedSlots[atomix.Uint64](capacity),
		capacity: uint64(capacity),
	}
	for i := range q.seq {
		q.seq[i].StoreRelaxed(uint64(i))
	}
	return q, nil
}

// TryPush adds an element. Returns false if the queue is full, or if
// this producer lost the CAS race for the slot it was about to claim.
func (q *MPMC[T]) TryPush(v T) bool {
	pos := q.tail.LoadRelaxed()
	if pos-q.head.LoadAcquire() >= q.capacity {
		return false
	}
	slot := pos % q.capacity
	if q.seq[slot].LoadAcquire() != pos {
		return false
	}
	if !q.tail.CompareAndSwapAcqRel(pos, pos+1) {
		return false
	}
	q.buffer[slot] = v
	q.seq[slot].StoreRelease(pos + 1)
	return true
}

// TryPop removes and returns an element. Returns (zero-value, false) if
// the queue is empty, or if this consumer lost the CAS race for the slot
// it was about to claim.
func (q *MPMC[T]) TryPop() (T, bool) {
	var zero T
	pos := q.head.LoadRelaxed()
	if pos == q.tail.LoadAcquire() {
		return zero, false
	}
	slot := pos % q.capacity
	if q.seq[slot].LoadAcquire() != pos+1 {
		return zero, false
	}
	if !q.head.CompareAndSwapAcqRel(pos, pos+1) {
		return zero, false
	}
	v := q.buffer[slot]
	q.buffer[slot] = zero
	q.seq[slot].StoreRelease(pos + q.capacity)
	return v, true
}

// TryPushBatch pushes elements of src one at a time, stopping at the
// first one TryPush refuses. Returns the count actually pushed.
func (q *MPMC[T]) TryPushBatch(src []T) int {
	n := 0
	for ; n < len(src); n++ {
		if !q.TryPush(src[n]) {
			break
		}
	}
	return n
}

// TryPopBatch pops elements into dst one at a time, stopping at the first
// TryPop that finds nothing. Returns the count actually popped.
func (q *MPMC[T]) TryPopBatch(dst []T) int {
	n := 0
	for ; n < len(dst); n++ {
		v, ok := q.TryPop()
		if !ok {
			break
		}
		dst[n] = v
	}
	return n
}

// Push adds v, cooperatively yielding until it is accepted.
func (q *MPMC[T]) Push(v T) {
	sw := spin.Wait{}
	for !q.TryPush(v) {
		sw.Once()
	}
}

// Pop removes and returns an element, cooperatively yielding until one is
// available.
func (q *MPMC[T]) Pop() T {
	sw := spin.Wait{}
	for {
		if v, ok := q.TryPop(); ok {
			return v
		}
		sw.Once()
	}
}

// PushBatch adds every element of src, yielding between partial batches.
func (q *MPMC[T]) PushBatch(src []T) {
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
func (q *MPMC[T]) PopBatch(dst []T) {
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
func (q *MPMC[T]) Size() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}

// Empty reports whether the queue currently holds no elements.
func (q *MPMC[T]) Empty() bool {
	return q.Size() == 0
}

// Close destructs every currently live element. The caller must ensure no
// producer or consumer is active.
func (q *MPMC[T]) Close() {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	for ; head < tail; head++ {
		destroy(&q.buffer[head%q.capacity])
	}
}
