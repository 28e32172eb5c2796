// Package route binds URL path patterns to page functions and delivers
// path parameters to them as deferred values.
package route

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrRejected is stored when Reject is called with a nil error.
var ErrRejected = errors.New("route: deferred rejected")

// Deferred is a single-assignment value that settles exactly once, either
// with a value or with an error.
type Deferred[T any] struct {
	once   sync.Once
	done   chan struct{}
	val    T
	err    error
	awaits atomic.Int64
}

// NewDeferred returns an unsettled Deferred.
func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

// Resolved returns a Deferred already settled with v.
func Resolved[T any](v T) *Deferred[T] {
	d := NewDeferred[T]()
	d.Resolve(v)
	return d
}

// Rejected returns a Deferred already settled with err.
func Rejected[T any](err error) *Deferred[T] {
	d := NewDeferred[T]()
	d.Reject(err)
	return d
}

// Resolve settles d with v. It reports false if d was already settled.
func (d *Deferred[T]) Resolve(v T) bool {
	return d.settle(v, nil)
}

// Reject settles d with err. It reports false if d was already settled.
func (d *Deferred[T]) Reject(err error) bool {
	if err == nil {
		err = ErrRejected
	}
	var zero T
	return d.settle(zero, err)
}

func (d *Deferred[T]) settle(v T, err error) bool {
	settled := false
	d.once.Do(func() {
		d.val, d.err = v, err
		close(d.done)
		settled = true
	})
	return settled
}

// Done is closed once d settles.
func (d *Deferred[T]) Done() <-chan struct{} { return d.done }

// Await blocks until d settles or ctx ends. A rejection is returned as is.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
	default:
		select {
		case <-d.done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
	d.awaits.Add(1)
	return d.val, d.err
}

// Awaits returns how many Await calls have observed the settled value.
func (d *Deferred[T]) Awaits() int { return int(d.awaits.Load()) }
