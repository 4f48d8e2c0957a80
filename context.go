package pom

import (
	"context"
	"time"
)

// Context creates a clone with a context that inherits the previous one
func (s *Session) Context(ctx context.Context) *Session {
	if ctx == s.ctx {
		return s
	}

	newObj := *s
	newObj.ctx = ctx
	return &newObj
}

// GetContext of the session
func (s *Session) GetContext() context.Context {
	return s.ctx
}

// Context creates a clone with a context that inherits the previous one
func (el *Element) Context(ctx context.Context) *Element {
	if ctx == el.ctx {
		return el
	}

	newObj := *el
	newObj.ctx = ctx
	return &newObj
}

// GetContext of the element
func (el *Element) GetContext() context.Context {
	return el.ctx
}

// Timeout for chained sub-operations, it bounds the context, use Within to change how long waits last
func (el *Element) Timeout(d time.Duration) *Element {
	ctx, cancel := context.WithTimeout(el.ctx, d)
	newObj := el.Context(ctx)
	newObj.timeoutCancel = cancel
	return newObj
}

// CancelTimeout context
func (el *Element) CancelTimeout() *Element {
	if el.timeoutCancel != nil {
		el.timeoutCancel()
	}
	return el
}

// Within creates a clone whose waits give up after d
func (el *Element) Within(d time.Duration) *Element {
	newObj := *el
	newObj.timeout = d
	return &newObj
}

// Unchecked creates a clone that clicks and hovers without checking the visibility first
func (el *Element) Unchecked() *Element {
	newObj := *el
	newObj.skipVisibility = true
	return &newObj
}
