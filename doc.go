// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lasync provides a minimal toolkit for callback-driven
// asynchronous control flow: a stack-safe iteration trampoline, an
// auto-firing deferred result, and a single-slot rendezvous channel,
// together with the move-only ownership guard they rely on.
//
// The package implements cooperative scheduling, cancellation, and
// reference-counted lifetime management by hand, with no goroutines,
// channels, or locks anywhere in the core. Suspension is simply not
// calling a continuation yet; storing it for later invocation from an
// external scheduler is the package's only notion of awaiting.
//
// # Core Primitives
//
//   - [Loop]: an iteration trampoline. Its body receives a [Next]
//     continuation; calling it synchronously requests a rerun that
//     executes after the current frame unwinds, so arbitrarily long
//     chains of synchronous self-restarts run at O(1) stack depth.
//     Calling it later, from an unrelated context, reruns the body
//     directly from there.
//   - [Result]: a shared payload paired with a callback that fires
//     exactly once, when the last strong reference is released.
//     [Setter] splits a result into independent fan-in continuations,
//     each holding a reference until invoked.
//   - [Slot]: a single-item rendezvous between one consumer and one
//     provider. The consumer strongly owns the shared cell and
//     registers interest with [Slot.Recv]; the provider observes the
//     cell weakly through [Provider], registering readiness with
//     [Provider.Await] and delivering with [Provider.Send]. Whichever
//     side registers second resolves the side that arrived first.
//   - [Unique]: a move-only guard enforcing that a captured resource is
//     never duplicated; a second move out panics.
//
// # Lifetime and Cancellation
//
// Reference counts are explicit. A [Result] completes when its handle
// and every derived setter have been released; a [Slot] tears down when
// its last consumer-side reference is closed, delivering terminate=true
// exactly once to a still-pending request listener. That terminate flag
// is the package's only cancellation signal: there are no cancel
// tokens, deadlines, or timeouts, and a trampoline stops only by its
// references being dropped.
//
// # Protocol Violations
//
// Misusing a contract is a bug in the caller, not a runtime condition,
// and panics with an lasync-prefixed message. This covers registering a
// second listener of the same kind on a slot, sending with no pending
// receiver, releasing a result past zero, invoking a setter twice, and
// moving a unique value twice. Payload-level errors are the caller's
// concern; encode them in the payload type.
//
// # Concurrency Model
//
// A single logical execution context is assumed. Calls into any shared
// cell must never be concurrent; an external scheduler may run wherever
// it likes but must serialize work before it reaches these primitives.
// [Executor] is such a scheduler: a single-threaded task queue drained
// on demand, used throughout the tests and examples.
//
// # Streams
//
// [Stream] demonstrates the intended composition style: a pull-one-item
// callback protocol with [Option] as its end-of-stream marker. Sources
// ([Numbers], [FromSlice], [SlotStream]) may answer synchronously or
// asynchronously; [Join] and [InnerJoin] rendezvous two streams into
// pairs via a slot-fed provider loop with a [Result] fan-in per
// element, and [TreeSize] walks a callback-based directory tree with
// bounded stack depth.
//
// # Example
//
//	var ex lasync.Executor
//	src := lasync.Numbers(&ex, 1, 4)
//	res := lasync.NewResult(func(sum int) { fmt.Println(sum) }, 0)
//	lasync.Loop(func(next lasync.Next) {
//		src(func(v lasync.Option[int]) {
//			x, ok := v.Get()
//			if !ok {
//				res.Release()
//				return
//			}
//			*res.Data() += x
//			next()
//		})
//	})
//	ex.Run()
//	// prints 6
package lasync
