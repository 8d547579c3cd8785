package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrInterrupted     = errors.New("interrupted while waiting on the queue")
	ErrQueueFull       = errors.New("queue is at capacity, try again later")
	ErrInvalidProducer = errors.New("producer must be between 1 and 128 characters")
	ErrInvalidItemID   = errors.New("item id must be at most 128 characters")
	ErrInvalidLimit    = errors.New("limit must be between 1 and 1000")
)
