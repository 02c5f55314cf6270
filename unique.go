// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

import "sync/atomic"

// Unique wraps a value with single-ownership enforcement.
// The value can be moved out at most once; a second move panics.
// Borrowing through Get after a move also panics.
//
// Unique models affine resource usage: a resource captured in shared
// callback state must never be silently duplicated. Go has no copy
// constructors to reject at compile time, so duplication is caught at
// the moment a second party tries to take the value.
type Unique[T any] struct {
	moved atomic.Uintptr
	value T
}

// Wrap takes ownership of v and returns its guard.
func Wrap[T any](v T) *Unique[T] {
	return &Unique[T]{value: v}
}

// Get borrows the wrapped value for reading or mutation.
// Panics if the value has been moved out.
func (u *Unique[T]) Get() *T {
	if u.moved.Load() != 0 {
		panic("lasync: unique value used after move")
	}
	return &u.value
}

// Take moves the value out of the guard, leaving it empty.
// Panics if the value has already been moved out.
func (u *Unique[T]) Take() T {
	if u.moved.Add(1) != 1 {
		panic("lasync: unique value moved twice")
	}
	v := u.value
	var zero T
	u.value = zero
	return v
}

// TryTake attempts to move the value out of the guard.
// Returns (value, true) on success, or (zero, false) if already moved.
func (u *Unique[T]) TryTake() (T, bool) {
	if u.moved.Add(1) != 1 {
		var zero T
		return zero, false
	}
	v := u.value
	var zero T
	u.value = zero
	return v, true
}

// Move transfers ownership to a fresh guard, leaving u empty.
func (u *Unique[T]) Move() *Unique[T] {
	return &Unique[T]{value: u.Take()}
}
