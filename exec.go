// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// Executor runs scheduled tasks on a single logical execution context
// at a moment its caller chooses. It is the package's only notion of a
// scheduler and exists primarily to drive tests and examples: a source
// that answers a request through an Executor answers it asynchronously.
//
// An Executor is not safe for concurrent use. The primitives in this
// package assume all calls into their shared state are serialized;
// anything arriving from other goroutines must be serialized before it
// reaches a task.
type Executor struct {
	tasks []func()
}

// Schedule queues task for execution during a later Run round.
func (e *Executor) Schedule(task func()) {
	e.tasks = append(e.tasks, task)
}

// Run executes every scheduled task, in scheduling order, until the
// queue is empty. Tasks scheduled by running tasks are executed in the
// following round of the same Run call.
func (e *Executor) Run() {
	for len(e.tasks) > 0 {
		batch := e.tasks
		e.tasks = nil
		for _, task := range batch {
			task()
		}
	}
}
