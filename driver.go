package pom

import (
	"context"
	"strings"
)

// MouseButton for Driver.Click
type MouseButton string

const (
	// MouseLeft button
	MouseLeft MouseButton = "left"
	// MouseRight button
	MouseRight MouseButton = "right"
)

// TypeOptions for Driver.Type
type TypeOptions struct {
	// Replace the current value instead of appending to it
	Replace bool

	// Paste the whole text as a single input instead of typing it character by character
	Paste bool
}

// Driver answers point-in-time questions about the elements a Selector matches
// and performs actions on them. nth is the index in the matched list.
// A Driver never retries or waits for an element to appear, waiting is the job of the caller.
type Driver interface {
	// Navigate the page to the url
	Navigate(ctx context.Context, url string) error

	// Count the elements the selector currently matches
	Count(ctx context.Context, sel Selector) (int, error)

	// Visible reports whether the element is visible or can be scrolled into view
	Visible(ctx context.Context, sel Selector, nth int) (bool, error)

	// Attributes of the element
	Attributes(ctx context.Context, sel Selector, nth int) (Attributes, error)

	// StyleProperty returns the computed value of the css property
	StyleProperty(ctx context.Context, sel Selector, nth int, name string) (string, error)

	// Text content of the element and its descendants
	Text(ctx context.Context, sel Selector, nth int) (string, error)

	// Value of a form control
	Value(ctx context.Context, sel Selector, nth int) (string, error)

	// Click the element
	Click(ctx context.Context, sel Selector, nth int, button MouseButton) error

	// Hover the mouse over the element
	Hover(ctx context.Context, sel Selector, nth int) error

	// ScrollIntoView scrolls the element into the visible area
	ScrollIntoView(ctx context.Context, sel Selector, nth int) error

	// Type the text into the element
	Type(ctx context.Context, sel Selector, nth int, text string, opts TypeOptions) error

	// Clear the value of the element
	Clear(ctx context.Context, sel Selector, nth int) error
}

// Attributes of an element
type Attributes map[string]string

// Has the attribute
func (a Attributes) Has(name string) bool {
	_, has := a[name]
	return has
}

// Get the attribute, "" if it doesn't exist
func (a Attributes) Get(name string) string {
	return a[name]
}

// ClassContains reports whether the class attribute contains s
func (a Attributes) ClassContains(s string) bool {
	return strings.Contains(a["class"], s)
}

// Disabled is true if the element has the disabled attribute, or its class contains "disabled",
// or its aria-disabled is "true".
func (a Attributes) Disabled() bool {
	return a.Has("disabled") ||
		a.ClassContains("disabled") ||
		a.Get("aria-disabled") == "true"
}

// Enabled is true if the element has no disabled attribute, its class doesn't contain "disabled",
// and its aria-disabled is either absent or "false".
func (a Attributes) Enabled() bool {
	if a.Has("disabled") || a.ClassContains("disabled") {
		return false
	}
	if a.Has("aria-disabled") {
		return a.Get("aria-disabled") == "false"
	}
	return true
}
