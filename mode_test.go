// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq_test

import (
	"errors"
	"testing"

	"github.com/vantage-systems/lfq"
)

func TestNewDispatchesByMode(t *testing.T) {
	cases := []struct {
		name string
		mode lfq.Mode
	}{
		{"SPSC", lfq.ModeSPSC},
		{"MPSC", lfq.ModeMPSC},
		{"MPMC", lfq.ModeMPMC},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := lfq.New[int](4, tc.mode)
			if err != nil {
				t.Fatalf("New(%s): %v", tc.name, err)
			}
			if q.Cap() != 4 {
				t.Fatalf("Cap: got %d, want 4", q.Cap())
			}
			if !q.TryPush(1) {
				t.Fatalf("TryPush: want true")
			}
			v, ok := q.TryPop()
			if !ok || v != 1 {
				t.Fatalf("TryPop: got (%d, %v), want (1, true)", v, ok)
			}
		})
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	if _, err := lfq.New[int](0, lfq.ModeMPMC); !errors.Is(err, lfq.ErrInvalidCapacity) {
		t.Fatalf("New(0): got %v, want ErrInvalidCapacity", err)
	}
}
