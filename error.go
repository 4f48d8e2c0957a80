package pom

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ReasonNotExist component doesn't exist after the wait
	ReasonNotExist = "does not exist"
	// ReasonNotAbsent component still exists after the wait
	ReasonNotAbsent = "is not absent"
	// ReasonDisabled component is still disabled after the wait
	ReasonDisabled = "is disabled"
	// ReasonEnabled component is still enabled after the wait
	ReasonEnabled = "is enabled"
	// ReasonNotVisible component is not visible
	ReasonNotVisible = "is not visible"
	// ReasonStyleMismatch component style doesn't have the expected value after the wait
	ReasonStyleMismatch = "has unexpected style"
)

// ComponentError is returned when a component fails a check, the message
// contains the name, the role and the containment chain of the component.
type ComponentError struct {
	Name    string
	Role    Role
	Chain   string
	Reason  string
	Details string
}

func newComponentError(d *Descriptor, reason string) *ComponentError {
	return &ComponentError{
		Name:   d.Name(),
		Role:   d.Role(),
		Chain:  d.Chain(),
		Reason: reason,
	}
}

// Error interface
func (e *ComponentError) Error() string {
	msg := fmt.Sprintf(`The "%s" %s %s`, e.Name, strings.ToLower(string(e.Role)), e.Reason)
	if e.Role != RolePage {
		msg += fmt.Sprintf(` at "%s"`, e.Chain)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Is interface. A target with an empty Reason matches any ComponentError.
func (e *ComponentError) Is(target error) bool {
	t, ok := target.(*ComponentError)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// IsComponentError reports whether err is a ComponentError with the reason.
// An empty reason matches any ComponentError.
func IsComponentError(err error, reason string) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &ComponentError{Reason: reason})
}

// ElementNotFoundError is returned by a Driver when nth is out of the range of the matched list
type ElementNotFoundError struct {
	Selector Selector
	Nth      int
	Count    int
}

// Error interface
func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("cannot find element %d of %q, %d matched", e.Nth, e.Selector.String(), e.Count)
}

// Is interface
func (e *ElementNotFoundError) Is(target error) bool {
	_, ok := target.(*ElementNotFoundError)
	return ok
}
