// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package workers

import (
	"testing"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (m *countingWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := New(w1, w2, w3)
	ws.Run()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not panic on an empty worker list.
	ws.Run()
}

func TestFunc_AdaptsPlainFunction(t *testing.T) {
	called := false
	New(Func(func() { called = true })).Run()

	if !called {
		t.Errorf("expected adapted function to run")
	}
}
