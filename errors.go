// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock is the semantic sentinel a try-operation would return for
// "queue full" or "queue empty" if it reported outcomes as an error rather
// than a bool or count. No method in this package returns it; it is
// exported as an alias of [iox.ErrWouldBlock] so callers that classify
// errors from other code in the same ecosystem with [IsWouldBlock] have a
// value to compare or wrap against.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidCapacity is returned by [New] and the fallible NewXxx
// constructors when capacity is not strictly positive. It is the only
// construction error: storage is allocated with make, and an allocation
// the runtime cannot satisfy is not reported as an error.
var ErrInvalidCapacity = errors.New("lfq: capacity must be > 0")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
