package crawl

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier sizing. The document tables of even the largest procedures
// stay well under the expected count, so the false-positive budget is
// effectively unreachable in practice.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Frontier is a FIFO queue of URLs with Bloom-filter deduplication.
// The portal walk is strictly sequential, so insertion order is the
// processing order. Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a Frontier sized for the default expected URL
// count.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push enqueues a URL. Returns false if the URL has already been seen.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop dequeues the next URL in insertion order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued at some point.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(url)
}
