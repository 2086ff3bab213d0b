package models

import (
	"context"
)

// Future delivers the single result of an asynchronous task.
type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() <-chan T {
	return f.input
}

// Wait blocks until the result is delivered or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case v := <-f.input:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Stop cancels the task if it has not started yet.
func (f *Future[T]) Stop() {
	f.cancel()
}
