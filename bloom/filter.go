// Package bloom provides probabilistic URL deduplication for ingest runs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks legislation URLs already handled during a run. False
// positives are possible, so a positive Seen may drop a never-before-seen
// URL; false negatives are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether url was passed to Seen before and marks it.
func (f *Filter) Seen(url string) bool {
	if f.f.TestString(url) {
		return true
	}
	f.f.AddString(url)
	return false
}

// EstimatedCount returns the approximate number of URLs marked so far.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
