// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lasync

// Source yields the elements of a possibly-asynchronous sequence, one
// request at a time. Next passes ok=false after the last element. A
// source may answer synchronously, before Next returns, or later from a
// scheduled task; consumers must tolerate both.
type Source[T any] interface {
	Next(callback func(v T, ok bool))
}

// File is a file whose size is obtained asynchronously.
type File interface {
	Size(callback func(size int))
}

// Dir is a directory listing its entries as sources.
// Each call returns a fresh, single-consumer source; the Unique guard
// around it in TreeSize enforces that it is never shared.
type Dir interface {
	Files() Source[File]
	Dirs() Source[Dir]
}

// TreeSize sums the sizes of every file in the tree rooted at root and
// passes the total to callback once the whole tree has been visited.
// Subdirectories are scanned concurrently with the files of their
// parent; any mix of synchronous and asynchronous answers is handled
// with bounded stack growth per directory level. The callback fires
// exactly once, when the last outstanding size or listing has been
// accounted for.
func TreeSize(root Dir, callback func(total int)) {
	treeSize(root, NewResult(callback, 0))
}

// treeSize consumes one strong reference to total, transferred by the
// caller, and releases it once its part of the scan no longer needs the
// accumulator alive.
func treeSize(root Dir, total *Result[int]) {
	total.Retain() // one reference per loop below

	dirs := Wrap(root.Dirs())
	Loop(func(next Next) {
		(*dirs.Get()).Next(func(d Dir, ok bool) {
			if !ok {
				total.Release()
				return
			}
			treeSize(d, total.Retain())
			next()
		})
	})

	files := Wrap(root.Files())
	Loop(func(next Next) {
		(*files.Get()).Next(func(f File, ok bool) {
			if !ok {
				total.Release()
				return
			}
			total.Retain()
			f.Size(func(size int) {
				*total.Data() += size
				total.Release()
			})
			next()
		})
	})
}
