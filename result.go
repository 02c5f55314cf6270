// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// Result pairs a shared payload with a completion callback that fires
// exactly once, when the last strong reference to the payload is
// released. The payload may be read and mutated through any live
// reference until that moment.
//
// References are counted explicitly: the handle returned by NewResult
// holds one, Retain adds one, Release drops one, and every callback
// derived with Setter holds one until it is invoked. Whichever holder
// releases last triggers completion, whether that happens synchronously
// at scope exit or from a scheduled task much later.
type Result[T any] struct {
	refs     int
	data     T
	callback func(T)
}

// NewResult creates a deferred result with the given completion
// callback and initial payload. The returned handle holds one strong
// reference, which its owner must drop with Release.
func NewResult[T any](callback func(T), initial T) *Result[T] {
	return &Result[T]{refs: 1, data: initial, callback: callback}
}

// Data returns mutable access to the enclosed payload.
// Panics if every reference has already been released.
func (r *Result[T]) Data() *T {
	if r.refs <= 0 {
		panic("lasync: result used after completion")
	}
	return &r.data
}

// Retain adds a strong reference and returns r for call chaining.
// Panics if every reference has already been released.
func (r *Result[T]) Retain() *Result[T] {
	if r.refs <= 0 {
		panic("lasync: result retained after completion")
	}
	r.refs++
	return r
}

// Release drops one strong reference. Dropping the last one fires the
// completion callback with the final payload value. Releasing past zero
// panics.
func (r *Result[T]) Release() {
	if r.refs <= 0 {
		panic("lasync: result released twice")
	}
	r.refs--
	if r.refs == 0 {
		r.callback(r.data)
	}
}

// Setter derives an independent completion callback that writes one
// field of r's payload. The returned function holds a strong reference
// until it is invoked, so r cannot complete while the write is still
// outstanding; invoking it writes the field and releases the reference
// in one step. Invoking the same setter twice panics.
//
// Splitting a result into several setters and handing each to an
// independent operation turns r into a fan-in join point: the completion
// callback fires once, automatically, after every setter and the
// original handle have been released, regardless of order.
func Setter[T, X any](r *Result[T], field *X) func(X) {
	r.Retain()
	done := false
	return func(x X) {
		if done {
			panic("lasync: setter invoked twice")
		}
		done = true
		*field = x
		r.Release()
	}
}
