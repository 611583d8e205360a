package service

import (
	"iter"
	"sync"

	"github.com/MKhiriev/hashtrack/internal/workers"
	"github.com/MKhiriev/hashtrack/models"
)

// FeedHandle is the consumer side of one subscription. It is a lazy,
// non-restartable sequence of posts in arrival order that ends exactly once.
// A handle has a single consumer.
type FeedHandle struct {
	posts  <-chan models.Tweet
	worker *workers.Worker

	mu  sync.Mutex
	err error
}

// Next blocks until a post arrives or the feed ends. After it returns false
// it keeps returning false and Err reports why the feed ended.
func (h *FeedHandle) Next() (models.Tweet, bool) {
	tweet, ok := <-h.posts
	return tweet, ok
}

// Posts adapts Next to a range-over-func iterator.
func (h *FeedHandle) Posts() iter.Seq[models.Tweet] {
	return func(yield func(models.Tweet) bool) {
		for {
			tweet, ok := h.Next()
			if !ok || !yield(tweet) {
				return
			}
		}
	}
}

// Err returns the error that ended the feed, or nil when it ended cleanly or
// was cancelled. It is meaningful once Next has returned false.
func (h *FeedHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Close stops the producer, waits for it to release the connection and
// discards undelivered posts. It is safe to call more than once.
func (h *FeedHandle) Close() {
	h.worker.Stop()
	for range h.posts {
	}
}

func (h *FeedHandle) setErr(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.err = err
}
