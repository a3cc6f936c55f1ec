// Package leaktest holds test helpers that catch goroutine and heap growth
// in code that is expected to be allocation-stable.
package leaktest

import (
	"runtime"
	"testing"

	"go.uber.org/goleak"
)

const bytesPerMB = 1024 * 1024

// HeapChecker records live heap before a workload so growth can be asserted after it
type HeapChecker struct {
	before uint64
	t      testing.TB
}

// NewHeapChecker collects garbage and snapshots the live heap
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	return &HeapChecker{before: liveHeap(), t: t}
}

// AssertGrowthBelow fails the test when the live heap grew by more than maxMB
func (h *HeapChecker) AssertGrowthBelow(maxMB float64) {
	h.t.Helper()

	after := liveHeap()
	growth := (float64(after) - float64(h.before)) / bytesPerMB
	if growth > maxMB {
		h.t.Errorf("live heap grew %.2fMB (before=%.2fMB after=%.2fMB, max=%.2fMB)",
			growth, float64(h.before)/bytesPerMB, float64(after)/bytesPerMB, maxMB)
	}
}

// NoGoroutineLeak runs fn and fails if it leaves goroutines behind.
// Goroutines already running when it is called are ignored.
func NoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	ignore := goleak.IgnoreCurrent()
	fn()
	goleak.VerifyNone(t, ignore)
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
