// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// Mode selects which concurrency profile [New] constructs. It exists only
// to give New a single entry point; once a queue is built its mode is
// fixed and New never appears on a hot path.
type Mode int

const (
	// ModeSPSC builds a single-producer single-consumer queue.
	ModeSPSC Mode = iota
	// ModeMPSC builds a multi-producer single-consumer queue.
	ModeMPSC
	// ModeMPMC builds a multi-producer multi-consumer queue.
	ModeMPMC
)

// New constructs a [Queue] of the requested capacity and mode.
// Returns [ErrInvalidCapacity] if capacity <= 0.
//
// Direct constructors ([NewSPSC], [NewMPSC], [NewMPMC]) are preferred when
// the mode is known at the call site: they return the concrete type
// instead of an interface, and are identical in every other respect.
func New[T any](capacity int, mode Mode) (Queue[T], error) {
	switch mode {
	case ModeSPSC:
		q, err := NewSPSC[T](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	case ModeMPSC:
		q, err := NewMPSC[T](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		q, err := NewMPMC[T](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
}
