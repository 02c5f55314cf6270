// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// Next is the continuation handed to a loop body.
// Calling it requests another iteration of the body.
//
// A body may use its Next exactly one of four ways per iteration:
// drop it (iteration ends), call it once synchronously before returning
// (the dispatch loop reruns the body after the frame unwinds), store it
// and call it later from an unrelated call context (the body reruns
// directly from that context), or hand it to code that does one of the
// above. Calling it twice within one synchronous frame toggles the
// restart request back off and ends the iteration.
type Next func()

// loopCell is the shared state of one trampoline instance.
// restart records whether a rerun has been requested since the last
// dispatch; running marks that a dispatch loop is active below the
// current frame on this stack.
type loopCell struct {
	body    func(Next)
	next    Next
	restart bool
	running bool
}

// Loop runs body once synchronously, passing it a continuation that
// requests further iterations. Synchronous restarts are converted into
// iteration by an outer dispatch loop, so a chain of N self-restarts
// executes with O(1) stack growth instead of N nested frames.
//
// The loop's state stays reachable exactly as long as some holder of the
// continuation remains; dropping every reference abandons any pending
// restart.
func Loop(body func(next Next)) {
	c := &loopCell{body: body}
	c.next = c.requestRestart
	c.dispatch()
}

// requestRestart toggles the restart flag. When a dispatch loop is
// active below this frame, the flag alone carries the request; the
// dispatch loop observes it after the body frame returns. From any
// other context this is an asynchronous restart and dispatches the
// body directly.
func (c *loopCell) requestRestart() {
	c.restart = !c.restart
	if c.running {
		return
	}
	c.dispatch()
}

// dispatch reruns the body until no restart request is pending.
// The body always executes at this frame's depth, never nested inside
// a previous body frame.
func (c *loopCell) dispatch() {
	c.running = true
	for {
		c.restart = false
		c.body(c.next)
		if !c.restart {
			break
		}
	}
	c.running = false
}
