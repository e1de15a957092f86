// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done.
// The boolean is false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// SendLatest delivers data to a buffered channel without blocking, evicting
// the oldest undelivered value when the buffer is full. A slow reader only
// ever observes the most recent values. ch must not have other senders.
func SendLatest[T any](ch chan T, data T) {
	for {
		select {
		case ch <- data:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
