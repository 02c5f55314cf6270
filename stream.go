// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// Stream requests the next element of a sequence and passes it to the
// callback, synchronously or later. None signals the end of the
// sequence; past the end a well-behaved source answers None to every
// further request. A stream supports at most one outstanding request
// at a time.
type Stream[T any] func(callback func(Option[T]))

// Numbers returns an asynchronous stream counting from (inclusive) to
// to (exclusive). Every request is answered through ex, never
// synchronously.
func Numbers(ex *Executor, from, to int) Stream[int] {
	i := from
	return func(callback func(Option[int])) {
		v := None[int]()
		if i < to {
			v = Some(i)
			i++
		}
		ex.Schedule(func() { callback(v) })
	}
}

// FromSlice returns a synchronous stream over items. It answers every
// request before returning, which exercises the synchronous-restart
// path of any loop consuming it.
func FromSlice[T any](items []T) Stream[T] {
	i := 0
	return func(callback func(Option[T])) {
		if i < len(items) {
			v := items[i]
			i++
			callback(Some(v))
			return
		}
		callback(None[T]())
	}
}

// SlotStream exposes the consumer side of a slot as a stream.
// The returned stream keeps the slot's cell alive for as long as the
// stream itself is reachable.
func SlotStream[T any](s *Slot[Option[T]]) Stream[T] {
	return s.Recv
}

// Join zips two streams into one stream of pairs of optional elements.
// One element is requested from each input per output pair; the two
// requests run concurrently and are joined through a deferred result
// with one setter per side. The joined stream ends (yields None) only
// after both inputs have ended; while exactly one input is live, the
// exhausted side contributes None within the pair.
func Join[A, B any](a Stream[A], b Stream[B]) Stream[Pair[Option[A], Option[B]]] {
	s := NewSlot[Option[Pair[Option[A], Option[B]]]]()
	sink := s.Provider()
	Loop(func(next Next) {
		sink.Await(func(terminate bool) {
			if terminate {
				return
			}
			combined := NewResult(func(v Pair[Option[A], Option[B]]) {
				if v.Fst.IsSome() || v.Snd.IsSome() {
					sink.Send(Some(v))
				} else {
					sink.Send(None[Pair[Option[A], Option[B]]]())
				}
				next()
			}, Pair[Option[A], Option[B]]{})
			a(Setter(combined, &combined.Data().Fst))
			b(Setter(combined, &combined.Data().Snd))
			combined.Release()
		})
	})
	return SlotStream(s)
}

// InnerJoin zips two streams into one stream of element pairs, ending
// as soon as either input ends. Requests run concurrently, as in Join.
func InnerJoin[A, B any](a Stream[A], b Stream[B]) Stream[Pair[A, B]] {
	s := NewSlot[Option[Pair[A, B]]]()
	sink := s.Provider()
	Loop(func(next Next) {
		sink.Await(func(terminate bool) {
			if terminate {
				return
			}
			combined := NewResult(func(v Pair[Option[A], Option[B]]) {
				fst, okA := v.Fst.Get()
				snd, okB := v.Snd.Get()
				if okA && okB {
					sink.Send(Some(Pair[A, B]{Fst: fst, Snd: snd}))
				} else {
					sink.Send(None[Pair[A, B]]())
				}
				next()
			}, Pair[Option[A], Option[B]]{})
			a(Setter(combined, &combined.Data().Fst))
			b(Setter(combined, &combined.Data().Snd))
			combined.Release()
		})
	})
	return SlotStream(s)
}

// EndOfStream returns a continuation that parks p in an endless loop
// answering None to every request, until the consumer side terminates
// the slot. A finite generator hands this to its last producing step so
// the stream it feeds stays well-behaved past its end.
func EndOfStream[T any](p Provider[Option[T]]) func() {
	return func() {
		Loop(func(next Next) {
			p.Await(func(terminate bool) {
				if terminate {
					return
				}
				p.Send(None[T]())
				next()
			})
		})
	}
}
