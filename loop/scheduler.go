// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

// ManualScheduler is a [Scheduler] for headless use that
// runs requested frames only when stepped.
type ManualScheduler struct {
	pending func()
}

func (ms *ManualScheduler) RequestFrame(fun func()) {
	ms.pending = fun
}

// Pending returns whether a frame has been requested.
func (ms *ManualScheduler) Pending() bool {
	return ms.pending != nil
}

// Step runs the requested frame, if any, and returns whether it did.
func (ms *ManualScheduler) Step() bool {
	fun := ms.pending
	if fun == nil {
		return false
	}
	ms.pending = nil
	fun()
	return true
}

// Run steps up to n frames and returns how many ran.
func (ms *ManualScheduler) Run(n int) int {
	for i := range n {
		if !ms.Step() {
			return i
		}
	}
	return n
}
