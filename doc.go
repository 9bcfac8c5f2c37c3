// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfq provides bounded, lock-free, cache-aware ring-buffer queues.
//
// Three concurrency profiles are offered as distinct generic types, each
// implementing the same operation contract:
//
//   - SPSC: Single-Producer Single-Consumer
//   - MPSC: Multi-Producer Single-Consumer
//   - MPMC: Multi-Producer Multi-Consumer
//
// # Quick Start
//
//	q, err := lfq.NewSPSC[Event](1024)
//	q, err := lfq.NewMPMC[*Request](4096)
//
// Or let a [Mode] value pick the type at construction:
//
//	q, err := lfq.New[Event](1024, lfq.ModeMPSC)
//
// # Basic Usage
//
//	q, err := lfq.NewMPMC[int](1024)
//
//	if ok := q.TryPush(42); !ok {
//	    // queue full or lost a CAS race — caller decides whether to retry
//	}
//
//	v, ok := q.TryPop()
//	if ok {
//	    fmt.Println(v)
//	}
//
// # Common Patterns
//
// Pipeline stage (SPSC):
//
//	q, err := lfq.NewSPSC[Data](1024)
//
//	go func() { // producer
//	    for data := range input {
//	        q.Push(data) // yields until room is available
//	    }
//	}()
//
//	go func() { // consumer
//	    for {
//	        process(q.Pop())
//	    }
//	}()
//
// Event aggregation (MPSC):
//
//	q, err := lfq.NewMPSC[Event](4096)
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Push(ev)
//	        }
//	    }(sensor)
//	}
//
//	go func() { // single aggregator
//	    for {
//	        aggregate(q.Pop())
//	    }
//	}()
//
// Worker pool (MPMC):
//
//	q, err := lfq.NewMPMC[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            v, ok := q.TryPop()
//	            if !ok {
//	                continue
//	            }
//	            v.Run()
//	        }
//	    }()
//	}
//
//	func Submit(j Job) bool { return q.TryPush(j) }
//
// # Batch Operations
//
// Every variant also offers batch try- and blocking forms that operate
// on contiguous Go slices for cache-efficient bulk transfer:
//
//	n := q.TryPushBatch(src)   // 0 <= n <= len(src)
//	n  = q.TryPopBatch(dst)    // 0 <= n <= len(dst)
//	q.PushBatch(src)           // yields until every element is accepted
//	q.PopBatch(dst)            // yields until dst is completely filled
//
// # Capacity
//
// Capacity is fixed at construction and is not rounded to a power of two;
// slot indexing uses modulo arithmetic so any positive capacity is valid.
// Minimum capacity is 1. A capacity of 0 or less makes construction fail
// with an explicit error rather than panicking — see [ErrInvalidCapacity].
// Storage is allocated with make; an allocation the runtime cannot satisfy
// is not turned into an error.
//
// # Thread Safety
//
// All operations are safe within their access-pattern constraints:
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPSC: many producer goroutines, one consumer goroutine
//   - MPMC: many producer and consumer goroutines
//
// Violating these constraints (e.g. two goroutines calling TryPop on an
// SPSC) is a contract violation: undefined behavior, not detected.
//
// # Closing
//
// Queues are not garbage, but Go does not run destructors. Call Close on
// a queue once no producer or consumer is active; it walks any unread
// elements and, for element types implementing [Destroyer], calls Destroy
// on each before dropping the queue's references to them.
//
// # Length
//
// Size is intentionally approximate under concurrency — an accurate count
// in a lock-free algorithm requires expensive cross-core synchronization.
// Track counts in application logic when an exact figure is needed.
//
// # Error Handling
//
// Try-operations return a bool (or count), never an error; nothing is
// ever retried internally. [ErrInvalidCapacity] is the one error this
// package returns, from [New] and the NewXxx constructors.
// [ErrWouldBlock] is exported as an ecosystem-consistent sentinel value —
// see [IsWouldBlock] to classify an error from elsewhere in the same
// ecosystem that wraps or equals it.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic memory ordering. These algorithms are
// correct; the detector may still false-positive on their sequence-number
// protocol. Stress tests incompatible with race detection skip themselves
// when [RaceEnabled] is true; the benchmarks are excluded via
// //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomics with explicit
// memory ordering, [code.hybscloud.com/spin] for cooperative CPU-pause
// backoff, and [code.hybscloud.com/iox] for the semantic error sentinel.
package lfq
