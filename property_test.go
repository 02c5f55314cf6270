// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/lasync"
)

const propertyN = 1000

// --- Group 1: Loop ordering and depth ---

// TestPropertyLoopIterationCount: for any random mix of synchronous and
// asynchronous restarts, one loop performs exactly the requested number
// of iterations, in order, with bounded body depth.
func TestPropertyLoopIterationCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		var ex lasync.Executor
		n := rng.IntN(50) + 1
		sync := make([]bool, n)
		for i := range sync {
			sync[i] = rng.IntN(2) == 0
		}

		calls := 0
		depth := 0
		lasync.Loop(func(next lasync.Next) {
			depth++
			if depth > 1 {
				t.Fatalf("body depth %d, want at most 1 (n=%d)", depth, n)
			}
			calls++
			if calls < n {
				if sync[calls-1] {
					next()
				} else {
					ex.Schedule(next)
				}
			}
			depth--
		})
		ex.Run()
		if calls != n {
			t.Fatalf("got %d iterations, want %d", calls, n)
		}
	}
}

// --- Group 2: Result exactly-once firing ---

// TestPropertyResultFanInOrder: for any number of setters invoked in
// any order, interleaved with the handle release at a random point, the
// callback fires exactly once with the last written values.
func TestPropertyResultFanInOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		k := rng.IntN(8) + 1
		fired := 0
		var got []int
		r := lasync.NewResult(func(v []int) {
			fired++
			got = v
		}, make([]int, k))

		setters := make([]func(int), k)
		for i := range setters {
			setters[i] = lasync.Setter(r, &(*r.Data())[i])
		}

		order := rng.Perm(k)
		releaseAt := rng.IntN(k + 1)
		for step, i := range order {
			if step == releaseAt {
				r.Release()
			}
			if fired != 0 && step < k {
				t.Fatalf("callback fired early at step %d of %d", step, k)
			}
			setters[i](i + 1)
		}
		if releaseAt == k {
			r.Release()
		}

		if fired != 1 {
			t.Fatalf("callback fired %d times, want 1 (k=%d)", fired, k)
		}
		for i, v := range got {
			if v != i+1 {
				t.Fatalf("got[%d] = %d, want %d", i, v, i+1)
			}
		}
	}
}

// TestPropertyResultAsyncRelease: releases scheduled on an executor in
// random order still fire exactly once, after the last one.
func TestPropertyResultAsyncRelease(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range propertyN {
		var ex lasync.Executor
		k := rng.IntN(6) + 1
		fired := 0
		r := lasync.NewResult(func([]int) { fired++ }, make([]int, k))
		for i := range k {
			set := lasync.Setter(r, &(*r.Data())[i])
			v := i
			ex.Schedule(func() { set(v) })
		}
		r.Release()
		if fired != 0 {
			t.Fatal("callback fired before scheduled setters ran")
		}
		ex.Run()
		if fired != 1 {
			t.Fatalf("callback fired %d times, want 1", fired)
		}
	}
}

// --- Group 3: Join ordering ---

// TestPropertyJoinZip: outer-joining a random synchronous slice with a
// random asynchronous range yields exactly the elementwise zip, padded
// with None on the exhausted side.
func TestPropertyJoinZip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		var ex lasync.Executor
		la := rng.IntN(8)
		lb := rng.IntN(8)
		a := make([]int, la)
		for i := range a {
			a[i] = rng.IntN(1000)
		}

		type elem = lasync.Pair[lasync.Option[int], lasync.Option[int]]
		joined := lasync.Join(lasync.FromSlice(a), lasync.Numbers(&ex, 0, lb))
		got := drain[elem](joined)
		ex.Run()

		n := max(la, lb)
		if len(*got) != n {
			t.Fatalf("got %d pairs, want %d (la=%d lb=%d)", len(*got), n, la, lb)
		}
		for i, p := range *got {
			wantFst := lasync.None[int]()
			if i < la {
				wantFst = lasync.Some(a[i])
			}
			wantSnd := lasync.None[int]()
			if i < lb {
				wantSnd = lasync.Some(i)
			}
			if p.Fst != wantFst || p.Snd != wantSnd {
				t.Fatalf("pair %d = %+v, want {%+v %+v}", i, p, wantFst, wantSnd)
			}
		}
	}
}

// --- Group 4: Slot rendezvous symmetry ---

// TestPropertySlotArrivalOrder: for any random arrival order of the two
// sides, every value sent is delivered, in order, exactly once.
func TestPropertySlotArrivalOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := lasync.NewSlot[int]()
		p := s.Provider()
		n := rng.IntN(20) + 1

		var got []int
		for i := range n {
			if rng.IntN(2) == 0 {
				// Provider arrives first.
				p.Await(func(terminate bool) {
					if terminate {
						t.Fatal("unexpected terminate")
					}
				})
				s.Recv(func(v int) { got = append(got, v) })
			} else {
				// Consumer arrives first.
				s.Recv(func(v int) { got = append(got, v) })
				p.Await(func(terminate bool) {
					if terminate {
						t.Fatal("unexpected terminate")
					}
				})
			}
			p.Send(i)
		}

		if len(got) != n {
			t.Fatalf("got %d values, want %d", len(got), n)
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("got[%d] = %d, want %d", i, v, i)
			}
		}
	}
}
