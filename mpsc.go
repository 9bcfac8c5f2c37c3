// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPSC is a multi-producer single-consumer bounded queue.
//
// Producers reserve a contiguous range of the ring with a single CAS on
// tail, bounded by how many of the next slots the consumer has already
// vacated for this round; the reservation is only as wide as the run of
// already-free slots, never wider. A losing CAS (or a run of zero free
// slots) returns 0 with no side effects — wait-free per try-call. The
// single consumer needs no CAS of its own: it just scans forward across
// slots the producers have finished publishing.
type MPSC[T any] struct {
	_        pad
	tail     atomix.Uint64 // producers CAS a range starting here
	_        pad
	head     atomix.Uint64 // consumer advances this alone
	_        pad
	buffer   []T
	seq      []atomix.Uint64 // seq[s]: next position valid to publish/retire slot s
	capacity uint64
}

// NewMPSC creates a new MPSC queue of the given capacity.
// Returns [ErrInvalidCapacity] if capacity <= 0.
func NewMPSC[T any](capacity int) (*MPSC[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &MPSC[T]{
		buffer:   alignedSlots[T](capacity),
		seq:      alignedSlots[atomix.Uint64](capacity),
		capacity: uint64(capacity),
	}
	for i := range q.seq {
		q.seq[i].StoreRelaxed(uint64(i))
	}
	return q, nil
}

// TryPush adds an element (multiple producers safe).
// Returns false if the queue is full or this producer lost its CAS.
func (q *MPSC[T]) TryPush(v T) bool {
	var one [1]T
	one[0] = v
	return q.TryPushBatch(one[:]) == 1
}

// TryPop removes and returns an element (single consumer only).
// Returns (zero-value, false) if the queue is empty.
func (q *MPSC[T]) TryPop() (T, bool) {
	var one [1]T
	if q.TryPopBatch(one[:]) == 1 {
		return one[0], true
	}
	var zero T
	return zero, false
}

// TryPushBatch reserves and fills as large a prefix of src as the
// already-vacated slots and a single CAS on tail allow.
func (q *MPSC[T]) TryPushBatch(src []T) int {
	if len(src) == 0 {
		return 0
	}
	pos := q.tail.LoadRelaxed()
	head := q.head.LoadAcquire()
	free := head + q.capacity - pos
	if free == 0 {
		return 0
	}
	want := uint64(len(src))
	if want > free {
		want = free
	}

	var n uint64
	for n = 0; n < want; n++ {
		slot := (pos + n) % q.capacity
		if q.seq[slot].LoadAcquire() != pos+n {
			break
		}
	}
	if n == 0 {
		return 0
	}

	if !q.tail.CompareAndSwapAcqRel(pos, pos+n) {
		// Another producer moved tail first; the caller retries. See
		// spec's open question on MPSC batch reservation: a producer that
		// wins this CAS must not fail before publishing every slot below,
		// or the consumer stalls waiting on a gap that is never filled.
		return 0
	}

	for i := uint64(0); i < n; i++ {
		slot := (pos + i) % q.capacity
		q.buffer[slot] = src[i]
		q.seq[slot].StoreRelease(pos + i + 1)
	}
	return int(n)
}

// TryPopBatch drains the longest published prefix starting at head,
// stopping at the first slot a producer has not yet finished publishing.
func (q *MPSC[T]) TryPopBatch(dst []T) int {
	if len(dst) == 0 {
		return 0
	}
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	avail := tail - head
	if avail == 0 {
		return 0
	}
	want := uint64(len(dst))
	if want > avail {
		want = avail
	}

	var n uint64
	for n = 0; n < want; n++ {
		slot := (head + n) % q.capacity
		if q.seq[slot].LoadAcquire() != head+n+1 {
			break
		}
	}
	if n == 0 {
		return 0
	}

	for i := uint64(0); i < n; i++ {
		slot := (head + i) % q.capacity
		dst[i] = q.buffer[slot]
		var zero T
		q.buffer[slot] = zero
		q.seq[slot].StoreRelease(head + i + q.capacity)
	}
	q.head.StoreRelease(head + n)
	return int(n)
}

// Push adds v, cooperatively yielding until it is accepted.
func (q *MPSC[T]) Push(v T) {
	sw := spin.Wait{}
	for !q.TryPush(v) {
		sw.Once()
	}
}

// Pop removes and returns an element, cooperatively yielding until one is
// available.
func (q *MPSC[T]) Pop() T {
	sw := spin.Wait{}
	for {
		if v, ok := q.TryPop(); ok {
			return v
		}
		sw.Once()
	}
}

// PushBatch adds every element of src, yielding between partial batches.
func (q *MPSC[T]) PushBatch(src []T) {
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
func (q *MPSC[T]) PopBatch(dst []T) {
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
func (q *MPSC[T]) Size() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}

// Empty reports whether the queue currently holds no elements.
func (q *MPSC[T]) Empty() bool {
	return q.Size() == 0
}

// Close destructs every currently live element. The caller must ensure no
// producer or consumer is active.
func (q *MPSC[T]) Close() {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	for ; head < tail; head++ {
		destroy(&q.buffer[head%q.capacity])
	}
}
