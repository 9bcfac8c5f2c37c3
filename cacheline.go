// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import "unsafe"

// cacheLineSize is the assumed inter-core coherence granularity. 64 bytes
// covers the overwhelming majority of x86-64 and arm64 parts; architectures
// with 128-byte lines still work correctly, just with a narrower false-
// sharing margin.
const cacheLineSize = 64

// pad occupies one whole cache line. Placed between two atomically-updated
// cursors it guarantees they never share a line, which is the dominant
// false-sharing hazard in a producer/consumer ring buffer.
type pad [cacheLineSize]byte

// alignedSlots allocates a []T whose backing array starts on a cache-line
// boundary, grounded on the original implementation's
// make_unique_buffer_aligned (operator new with an explicit alignment).
//
// Go slices carry no alignment guarantee beyond natural alignment of T, and
// T may hold pointers the garbage collector must see — so this cannot be a
// raw byte buffer reinterpreted via unsafe.Pointer the way the original
// does it in C++. Instead it over-allocates by up to a cache line's worth
// of elements and returns the aligned sub-slice; both slices share the same
// backing array, so the returned slice stays fully GC-visible.
//
// Alignment is best-effort: if no element within the over-allocated slack
// starts exactly on a cache-line boundary (possible when sizeof(T) does not
// evenly divide a cache line), the unaligned start of the allocation is
// used. This only costs a little false-sharing margin, never correctness.
func alignedSlots[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	stride := unsafe.Sizeof(zero)
	if stride == 0 {
		return make([]T, n)
	}

	slack := int(cacheLineSize/stride) + 1
	raw := make([]T, n+slack)

	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	misalign := base % cacheLineSize
	if misalign == 0 {
		return raw[:n]
	}

	for off := 0; off < slack; off++ {
		addr := base + uintptr(off)*stride
		if addr%cacheLineSize == 0 {
			return raw[off : off+n]
		}
	}
	// No exact boundary within the slack window (stride shares no common
	// factor with the line size close enough to hit one); fall back to the
	// unaligned start rather than over-allocating further.
	return raw[:n]
}

// destroy calls Destroy on v if T implements Destroyer, then zeroes *v so
// the queue drops any references the garbage collector should reclaim.
func destroy[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*v = zero
}

// Destroyer is implemented by element types that need explicit cleanup
// when a queue is closed while still holding unread elements. Close calls
// Destroy on every live element before zeroing its slot.
type Destroyer interface {
	Destroy()
}
