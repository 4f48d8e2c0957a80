package pom

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-rod/pom/lib/defaults"
	"github.com/go-rod/pom/lib/wait"
	"go.uber.org/zap"
)

// Session is the context every component operation runs in: the driver of the
// page under test, the logger for component actions and the default wait options.
type Session struct {
	ctx context.Context

	driver   Driver
	logger   *zap.Logger
	waiter   wait.Waiter
	timeout  time.Duration
	interval time.Duration
}

// New creates a session on the driver with the options from lib/defaults.
// The logger is a no-op one unless defaults.Trace is set.
func New(driver Driver) *Session {
	logger := zap.NewNop()
	if defaults.Trace {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}

	return &Session{
		ctx:      context.Background(),
		driver:   driver,
		logger:   logger,
		timeout:  defaults.Timeout,
		interval: defaults.Interval,
	}
}

// Logger sets the logger of component actions
func (s *Session) Logger(l *zap.Logger) *Session {
	s.logger = l
	return s
}

// WaitTimeout sets the default time a component waits to exist, to be enabled, etc.
func (s *Session) WaitTimeout(d time.Duration) *Session {
	s.timeout = d
	return s
}

// WaitInterval sets the pause between two checks of a wait
func (s *Session) WaitInterval(d time.Duration) *Session {
	s.interval = d
	return s
}

// Clock sets the clock the waits measure their deadline with
func (s *Session) Clock(c clock.Clock) *Session {
	s.waiter.Clock = c
	return s
}

// Driver of the session
func (s *Session) Driver() Driver {
	return s.driver
}

// Navigate the page under test to the url
func (s *Session) Navigate(url string) error {
	s.logger.Info("navigate", zap.String("url", url))
	return s.driver.Navigate(s.ctx, url)
}

// Element for the descriptor
func (s *Session) Element(d *Descriptor) *Element {
	return &Element{
		ctx:     s.ctx,
		sess:    s,
		desc:    d,
		timeout: s.timeout,
	}
}

// Component validates the values and creates the element
func (s *Session) Component(sel Selector, name string, role Role, parent *Descriptor) (*Element, error) {
	d, err := NewDescriptor(sel, name, role, parent)
	if err != nil {
		return nil, err
	}
	return s.Element(d), nil
}

// For waits until fn returns true with the default wait options of the session
func (s *Session) For(fn wait.Predicate) (bool, error) {
	return s.waiter.For(s.ctx, fn, s.timeout, s.interval)
}

// IsSelectorExisting returns true if the selector matches at least one element before the timeout
func (s *Session) IsSelectorExisting(sel Selector, timeout time.Duration) (bool, error) {
	return s.isSelectorExisting(s.ctx, sel, timeout)
}

func (s *Session) isSelectorExisting(ctx context.Context, sel Selector, timeout time.Duration) (bool, error) {
	return s.waiter.For(ctx, func(ctx context.Context) (bool, error) {
		n, err := s.driver.Count(ctx, sel)
		return n > 0, err
	}, timeout, s.interval)
}
