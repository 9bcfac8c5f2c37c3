// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vantage-systems/lfq"
)

func TestMPSCBasic(t *testing.T) {
	q, err := lfq.NewMPSC[int](4)
	if err != nil {
		t.Fatalf("NewMPSC: %v", err)
	}

	for i := 1; i <= 4; i++ {
		if !q.TryPush(i) {
			t.Fatalf("TryPush(%d): want true", i)
		}
	}
	if q.TryPush(5) {
		t.Fatalf("TryPush on full queue: want false")
	}
	for i := 1; i <= 4; i++ {
		v, ok := q.TryPop()
		if !ok || v != i {
			t.Fatalf("TryPop(%d): got (%d, %v)", i, v, ok)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Fatalf("TryPop on empty queue: want false")
	}
}

func TestMPSCDrainAndDestruct(t *testing.T) {
	q, err := lfq.NewMPSC[destroyerCounter](8)
	if err != nil {
		t.Fatalf("NewMPSC: %v", err)
	}

	var n int64
	for i := 0; i < 5; i++ {
		if !q.TryPush(destroyerCounter{n: &n}) {
			t.Fatalf("TryPush(%d): want true", i)
		}
	}
	q.Close()
	if got := atomic.LoadInt64(&n); got != 5 {
		t.Fatalf("destructions: got %d, want 5", got)
	}
}

// TestMPSCPerProducerOrder verifies each producer's own subsequence is
// strictly increasing as observed by the single consumer, even though
// the interleaving across producers is unconstrained.
func TestMPSCPerProducerOrder(t *testing.T) {
	if lfq.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}
	const producers = 4
	const perProducer = 25000

	q, err := lfq.NewMPSC[[2]int](1024) // [producerID, seq]
	if err != nil {
		t.Fatalf("NewMPSC: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(id int) {
			defer wg.Done()
			for s := 0; s < perProducer; s++ {
				q.Push([2]int{id, s})
			}
		}(p)
	}

	total := producers * perProducer
	next := make([]int, producers)
	received := 0
	for received < total {
		v := q.Pop()
		id, seq := v[0], v[1]
		if seq != next[id] {
			t.Fatalf("producer %d: got seq %d, want %d", id, seq, next[id])
		}
		next[id]++
		received++
	}

	wg.Wait()
	if !q.Empty() {
		t.Fatalf("Empty: want true after full drain")
	}
}

func TestMPSCNonPowerOfTwoCapacity(t *testing.T) {
	q, err := lfq.NewMPSC[int](3)
	if err != nil {
		t.Fatalf("NewMPSC: %v", err)
	}
	if q.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", q.Cap())
	}
	var wg sync.WaitGroup
	for p := 0; p < 2; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(base + i)
			}
		}(p * 1000)
	}

	got := make(map[int]bool)
	for i := 0; i < 200; i++ {
		v := q.Pop()
		if got[v] {
			t.Fatalf("duplicate value %d", v)
		}
		got[v] = true
	}
	wg.Wait()
}

func TestMPSCBatchPartialFill(t *testing.T) {
	q, err := lfq.NewMPSC[int](4)
	if err != nil {
		t.Fatalf("NewMPSC: %v", err)
	}
	src := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if n := q.TryPushBatch(src); n != 4 {
		t.Fatalf("TryPushBatch: got %d, want 4", n)
	}
	if q.Size() != 4 {
		t.Fatalf("Size: got %d, want 4", q.Size())
	}
	if n := q.TryPushBatch(src[4:]); n != 0 {
		t.Fatalf("TryPushBatch on full queue: got %d, want 0", n)
	}
	dst := make([]int, 2)
	if n := q.TryPopBatch(dst); n != 2 {
		t.Fatalf("TryPopBatch: got %d, want 2", n)
	}
	if n := q.TryPushBatch(src[4:6]); n != 2 {
		t.Fatalf("TryPushBatch after freeing slots: got %d, want 2", n)
	}
}
