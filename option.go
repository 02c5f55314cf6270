// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// Option represents a value that may be absent.
// The zero value is None. Streams use None as their end-of-stream
// marker; payload-level errors belong in T itself.
type Option[T any] struct {
	value T
	valid bool
}

// Some creates a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None creates an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.valid
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.valid
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

// MustGet returns the value, panicking if it is absent.
func (o Option[T]) MustGet() T {
	if !o.valid {
		panic("lasync: MustGet on absent option")
	}
	return o.value
}

// MatchOption applies some to a present value or calls none.
func MatchOption[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.valid {
		return some(o.value)
	}
	return none()
}

// MapOption applies a pure function to a present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.valid {
		return Option[B]{}
	}
	return Some(f(o.value))
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
