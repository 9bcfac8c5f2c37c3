// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package lfq_test

import (
	"testing"

	"github.com/vantage-systems/lfq"
)

func BenchmarkSPSCPushPop(b *testing.B) {
	q, err := lfq.NewSPSC[int](1024)
	if err != nil {
		b.Fatalf("NewSPSC: %v", err)
	}
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		q.TryPop()
	}
}

func BenchmarkMPSCPushPop(b *testing.B) {
	q, err := lfq.NewMPSC[int](1024)
	if err != nil {
		b.Fatalf("NewMPSC: %v", err)
	}
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		q.TryPop()
	}
}

func BenchmarkMPMCPushPop(b *testing.B) {
	q, err := lfq.NewMPMC[int](1024)
	if err != nil {
		b.Fatalf("NewMPMC: %v", err)
	}
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		q.TryPop()
	}
}

func BenchmarkMPMCPushPopParallel(b *testing.B) {
	q, err := lfq.NewMPMC[int](4096)
	if err != nil {
		b.Fatalf("NewMPMC: %v", err)
	}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for !q.TryPush(1) {
			}
			for {
				if _, ok := q.TryPop(); ok {
					break
				}
			}
		}
	})
}
