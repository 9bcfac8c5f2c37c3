// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// Queue is the combined contract every queue variant satisfies: single-
// element and batch try-operations, their blocking yield-until-success
// counterparts, and the three observables.
//
// Mode (SPSC/MPSC/MPMC) is fixed for the lifetime of a queue and is not
// switchable at runtime — [SPSC], [MPSC] and [MPMC] are distinct generic
// types sharing this interface, not one type carrying a mode flag, so the
// hot paths never pay for an indirect dispatch they don't need.
type Queue[T any] interface {
	// TryPush adds v to the queue without blocking.
	// Returns false if the queue is full or a producer lost a CAS race.
	TryPush(v T) bool

	// TryPop removes and returns the oldest element without blocking.
	// Returns (zero-value, false) if the queue is empty.
	TryPop() (T, bool)

	// TryPushBatch adds as many of src as fit without blocking.
	// Returns the count actually pushed, 0 <= n <= len(src).
	TryPushBatch(src []T) int

	// TryPopBatch fills as much of dst as is available without blocking.
	// Returns the count actually popped, 0 <= n <= len(dst).
	TryPopBatch(dst []T) int

	// Push adds v, cooperatively yielding until the queue accepts it.
	Push(v T)

	// Pop removes and returns the oldest element, cooperatively yielding
	// until one is available.
	Pop() T

	// PushBatch adds every element of src, cooperatively yielding between
	// partial batches until all of src has been accepted.
	PushBatch(src []T)

	// PopBatch fills dst completely, cooperatively yielding between
	// partial batches until every slot has been written.
	PopBatch(dst []T)

	// Size returns an approximate live-element count, max(0, tail-head).
	// It is never negative, but it is not clamped to Cap(): head and tail
	// are loaded separately, so under concurrent access the value may be
	// stale or briefly exceed Cap(); callers must not rely on it for
	// correctness.
	Size() int

	// Cap returns the fixed capacity supplied at construction.
	Cap() int

	// Empty reports whether Size() == 0. Approximate, like Size.
	Empty() bool

	// Close destructs every currently live element and zeroes its slot so
	// the queue drops its references to it. The slot storage itself is not
	// released. The caller must ensure no producer or consumer is active;
	// Close does not synchronize with concurrent operations.
	Close()
}
