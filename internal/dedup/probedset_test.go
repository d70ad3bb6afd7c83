package dedup

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestTestOrAdd_FirstSeen(t *testing.T) {
	set := NewProbedSet()

	if set.TestOrAdd("example.com") {
		t.Error("first TestOrAdd should report not present")
	}
	if !set.TestOrAdd("example.com") {
		t.Error("second TestOrAdd should report present")
	}
	if !set.Test("example.com") {
		t.Error("Test should report present after add")
	}
}

func TestTestOrAdd_DistinctDomains(t *testing.T) {
	set := NewProbedSet()
	set.TestOrAdd("a.example.com")

	if set.Test("b.example.com") {
		t.Error("unrelated domain should not be present")
	}
}

func TestTestOrAdd_ExactlyOnceUnderConcurrency(t *testing.T) {
	set := NewProbedSet()

	var firsts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !set.TestOrAdd("example.com") {
				firsts.Add(1)
			}
		}()
	}
	wg.Wait()

	if firsts.Load() != 1 {
		t.Errorf("exactly one goroutine should win the insert, got %d", firsts.Load())
	}
}
