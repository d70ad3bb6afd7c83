// Package dedup tracks domains that have already been audited in this run.
package dedup

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// ProbedSet is an approximate-membership set of audited domains. False
// positives are acceptable (a domain is at worst skipped once), false
// negatives are not. The set grows monotonically for the lifetime of one
// audit run.
type ProbedSet struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

// sized for a large crawl; at this capacity the false-positive rate stays
// below 0.1%
const (
	expectedDomains   = 100000
	falsePositiveRate = 0.001
)

// NewProbedSet creates an empty set.
func NewProbedSet() *ProbedSet {
	return &ProbedSet{
		filter: bloom.NewWithEstimates(expectedDomains, falsePositiveRate),
	}
}

// TestOrAdd atomically checks membership and inserts. It returns true if the
// domain was already present, false if it was just added. The single lock
// makes check-then-insert one step, so two concurrent audits of the same
// domain cannot both proceed.
func (s *ProbedSet) TestOrAdd(domain string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.TestOrAddString(domain)
}

// Test reports whether the domain is (probably) in the set.
func (s *ProbedSet) Test(domain string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.TestString(domain)
}
