// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// slotCell is the shared state of one rendezvous slot.
// At most one listener of each kind is registered at any time; whichever
// side registers second resolves the side registered first. refs counts
// consumer-side strong references only; the provider side observes the
// cell without keeping it alive and gates every use on dead.
type slotCell[T any] struct {
	refs      int
	dead      bool
	onRequest func(terminate bool)
	onData    func(T)
}

// Slot is the consumer-owned handle of a single-item rendezvous channel
// between two independently-timed parties. The consumer registers
// interest in the next value with Recv; the provider, through the weak
// handle returned by Provider, registers readiness with Await and
// delivers with Send. No value is ever buffered: sending requires a
// pending receiver.
//
// The consumer side strongly owns the shared cell. Closing the last
// consumer reference tears the cell down and delivers terminate=true to
// a still-pending request listener, exactly once. This is the system's
// only cancellation signal.
type Slot[T any] struct {
	cell *slotCell[T]
}

// Provider is the provider-side handle of a slot. It does not keep the
// slot alive: once the consumer side is fully closed, Await reports
// termination immediately. The handle is freely reusable and copyable;
// it carries no state of its own.
type Provider[T any] struct {
	cell *slotCell[T]
}

// NewSlot creates an empty rendezvous slot. The returned handle holds
// one consumer-side strong reference, which its owner drops with Close.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{cell: &slotCell[T]{refs: 1}}
}

// Recv registers single-shot interest in the next value. If the
// provider is already waiting, its request listener is resolved
// immediately with terminate=false, handing control to the provider
// side. Panics if a data listener is already registered or the slot has
// been closed.
func (s *Slot[T]) Recv(fn func(T)) {
	c := s.cell
	if c.dead {
		panic("lasync: recv on closed slot")
	}
	if c.onData != nil {
		panic("lasync: data listener already registered")
	}
	c.onData = fn
	if req := c.onRequest; req != nil {
		c.onRequest = nil
		req(false)
	}
}

// Provider returns the weak provider-side handle. Obtaining it does not
// extend the slot's lifetime.
func (s *Slot[T]) Provider() Provider[T] {
	return Provider[T]{cell: s.cell}
}

// Retain adds a consumer-side strong reference and returns s for call
// chaining. Panics if the slot has already been closed.
func (s *Slot[T]) Retain() *Slot[T] {
	c := s.cell
	if c.dead {
		panic("lasync: retain on closed slot")
	}
	c.refs++
	return s
}

// Close drops one consumer-side strong reference. Dropping the last one
// tears the cell down: a still-pending request listener is invoked
// exactly once with terminate=true, and a pending data listener is
// discarded. Closing past zero panics.
func (s *Slot[T]) Close() {
	c := s.cell
	if c.dead {
		panic("lasync: slot closed twice")
	}
	c.refs--
	if c.refs > 0 {
		return
	}
	c.dead = true
	c.onData = nil
	if req := c.onRequest; req != nil {
		c.onRequest = nil
		req(true)
	}
}

// Await registers readiness to produce the next value. If the consumer
// side is gone, fn is invoked immediately with terminate=true. If a
// data listener is already pending, fn is invoked immediately with
// terminate=false and the provider may Send now. Otherwise fn is stored
// until the consumer's next Recv. Panics if a request listener is
// already stored.
func (p Provider[T]) Await(fn func(terminate bool)) {
	c := p.cell
	if c.dead {
		fn(true)
		return
	}
	if c.onRequest != nil {
		panic("lasync: request listener already registered")
	}
	if c.onData != nil {
		fn(false)
		return
	}
	c.onRequest = fn
}

// Send delivers v to the pending data listener and clears it.
// Panics if no data listener is registered; values are never buffered.
func (p Provider[T]) Send(v T) {
	c := p.cell
	if c.dead || c.onData == nil {
		panic("lasync: send without pending receiver")
	}
	fn := c.onData
	c.onData = nil
	fn(v)
}
