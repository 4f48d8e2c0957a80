// Package wait polls a check until it holds or a deadline passes.
//
// There are two flavors. For treats "not yet" as a false result and returns
// false when the deadline passes. Retry treats "not yet" as an error and returns
// the error of the final attempt when the deadline passes.
//
// Both flavors compute the deadline once, always make at least one attempt,
// pause for the interval after every unsuccessful attempt, and only then check
// the deadline. An attempt that is in flight when the deadline passes is
// allowed to finish.
package wait

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-rod/rod/lib/utils"
)

const (
	// DefaultTimeout of For
	DefaultTimeout = 3 * time.Second

	// DefaultRetryTimeout of Retry
	DefaultRetryTimeout = 10 * time.Second

	// DefaultInterval between attempts
	DefaultInterval = 50 * time.Millisecond
)

// ErrNegativeTimeout is returned when a wait is given a negative timeout
var ErrNegativeTimeout = errors.New("wait: negative timeout")

// ErrNegativeInterval is returned when a wait is given a negative interval
var ErrNegativeInterval = errors.New("wait: negative interval")

// errDeadline stops utils.Retry once the deadline has passed, it never leaves this package
var errDeadline = errors.New("wait: deadline exceeded")

// Predicate reports whether the condition currently holds.
// A non-nil error is a broken predicate, not a "not yet".
type Predicate func(ctx context.Context) (bool, error)

// Action performs a check and returns an error when the condition doesn't currently hold
type Action func(ctx context.Context) error

// Waiter runs waits against a clock. The zero value uses the wall clock.
type Waiter struct {
	Clock clock.Clock
}

// For calls fn until it returns true or the timeout passes.
// It returns false without error on timeout. If fn returns an error the error is
// returned immediately as is and fn is not called again.
func (w Waiter) For(ctx context.Context, fn Predicate, timeout, interval time.Duration) (bool, error) {
	err := validate(timeout, interval)
	if err != nil {
		return false, err
	}

	ok := false
	err = utils.Retry(ctx, w.sleeper(timeout, interval), func() (bool, error) {
		var err error
		ok, err = fn(ctx)
		if err != nil {
			return true, err
		}
		return ok, nil
	})
	if errors.Is(err, errDeadline) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Retry calls fn until it returns nil or the timeout passes.
// On timeout the error of the last attempt is returned unchanged.
func (w Waiter) Retry(ctx context.Context, fn Action, timeout, interval time.Duration) error {
	err := validate(timeout, interval)
	if err != nil {
		return err
	}

	var last error
	err = utils.Retry(ctx, w.sleeper(timeout, interval), func() (bool, error) {
		last = fn(ctx)
		return last == nil, nil
	})
	if errors.Is(err, errDeadline) {
		return last
	}
	return err
}

// sleeper pauses for the interval then reports errDeadline if the deadline has passed.
// The deadline is fixed when the sleeper is created.
func (w Waiter) sleeper(timeout, interval time.Duration) utils.Sleeper {
	clk := w.clock()
	deadline := clk.Now().Add(timeout)

	return func(ctx context.Context) error {
		if interval > 0 {
			t := clk.Timer(interval)
			defer t.Stop()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}

		if !clk.Now().Before(deadline) {
			return errDeadline
		}
		return nil
	}
}

func (w Waiter) clock() clock.Clock {
	if w.Clock == nil {
		return clock.New()
	}
	return w.Clock
}

func validate(timeout, interval time.Duration) error {
	if timeout < 0 {
		return ErrNegativeTimeout
	}
	if interval < 0 {
		return ErrNegativeInterval
	}
	return nil
}

// For is Waiter.For on the wall clock
func For(ctx context.Context, fn Predicate, timeout, interval time.Duration) (bool, error) {
	return Waiter{}.For(ctx, fn, timeout, interval)
}

// Retry is Waiter.Retry on the wall clock
func Retry(ctx context.Context, fn Action, timeout, interval time.Duration) error {
	return Waiter{}.Retry(ctx, fn, timeout, interval)
}
