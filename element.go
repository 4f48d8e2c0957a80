package pom

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-rod/pom/lib/wait"
	"go.uber.org/zap"
)

// Element is a UI component bound to a session.
// Every method that touches the page waits for the component to exist first,
// unless its doc says otherwise.
type Element struct {
	ctx  context.Context
	sess *Session
	desc *Descriptor

	timeout        time.Duration
	skipVisibility bool

	timeoutCancel func()
}

// Descriptor of the component
func (el *Element) Descriptor() *Descriptor {
	return el.desc
}

// Selector that locates the component
func (el *Element) Selector() Selector {
	return el.desc.Selector()
}

// String interface
func (el *Element) String() string {
	return el.desc.Chain()
}

func (el *Element) driver() Driver {
	return el.sess.driver
}

func (el *Element) log(action, value string) {
	el.sess.logger.Info("component action",
		zap.String("action", action),
		zap.String("name", el.desc.Name()),
		zap.String("role", string(el.desc.Role())),
		zap.String("chain", el.desc.Chain()),
		zap.String("value", value),
	)
}

// WaitFor waits until fn returns true, it returns false if the wait times out
func (el *Element) WaitFor(fn wait.Predicate) (bool, error) {
	return el.sess.waiter.For(el.ctx, fn, el.timeout, el.sess.interval)
}

// Assert calls fn until it returns nil, if the wait times out the last error of fn is returned
func (el *Element) Assert(fn wait.Action) error {
	return el.sess.waiter.Retry(el.ctx, fn, el.timeout, el.sess.interval)
}

// Count of the elements the selector currently matches, no wait
func (el *Element) Count() (int, error) {
	return el.driver().Count(el.ctx, el.Selector())
}

// Exists returns true if at least one matching element exists right now, no wait
func (el *Element) Exists() (bool, error) {
	n, err := el.Count()
	return n > 0, err
}

// IsExisting returns true if the component exists before the wait times out
func (el *Element) IsExisting() (bool, error) {
	return el.sess.isSelectorExisting(el.ctx, el.Selector(), el.timeout)
}

// WaitExisting waits until the component exists, returns a ComponentError if it doesn't
func (el *Element) WaitExisting() error {
	ok, err := el.IsExisting()
	if err != nil {
		return err
	}
	if !ok {
		return newComponentError(el.desc, ReasonNotExist)
	}
	return nil
}

// WaitAbsent waits until no element matches the component, returns a ComponentError if one still does
func (el *Element) WaitAbsent() error {
	sel := el.Selector()
	ok, err := el.WaitFor(func(ctx context.Context) (bool, error) {
		n, err := el.driver().Count(ctx, sel)
		return n == 0, err
	})
	if err != nil {
		return err
	}
	if !ok {
		return newComponentError(el.desc, ReasonNotAbsent)
	}
	return nil
}

// IsEnabled reports whether the component is enabled, see Attributes.Enabled
func (el *Element) IsEnabled() (bool, error) {
	attrs, err := el.Attributes()
	if err != nil {
		return false, err
	}
	return attrs.Enabled(), nil
}

// IsDisabled reports whether the component is disabled, see Attributes.Disabled
func (el *Element) IsDisabled() (bool, error) {
	attrs, err := el.Attributes()
	if err != nil {
		return false, err
	}
	return attrs.Disabled(), nil
}

// WaitEnabled waits until the component is enabled, returns a ComponentError if it's still disabled
func (el *Element) WaitEnabled() error {
	ok, err := el.WaitFor(func(context.Context) (bool, error) {
		return el.IsEnabled()
	})
	if err != nil {
		return err
	}
	if !ok {
		return newComponentError(el.desc, ReasonDisabled)
	}
	return nil
}

// WaitDisabled waits until the component is disabled, returns a ComponentError if it's still enabled
func (el *Element) WaitDisabled() error {
	ok, err := el.WaitFor(func(context.Context) (bool, error) {
		return el.IsDisabled()
	})
	if err != nil {
		return err
	}
	if !ok {
		return newComponentError(el.desc, ReasonEnabled)
	}
	return nil
}

// Visible reports whether the first matching element is visible right now, no wait
func (el *Element) Visible() (bool, error) {
	return el.driver().Visible(el.ctx, el.Selector(), 0)
}

// AssertVisible returns a ComponentError if the component is not visible
func (el *Element) AssertVisible() error {
	ok, err := el.Visible()
	if err != nil {
		return err
	}
	if !ok {
		return newComponentError(el.desc, ReasonNotVisible)
	}
	return nil
}

// prepare the component for an interaction
func (el *Element) prepare() error {
	err := el.WaitExisting()
	if err != nil {
		return err
	}

	err = el.WaitEnabled()
	if err != nil {
		return err
	}

	if el.skipVisibility {
		return nil
	}
	return el.AssertVisible()
}

// Click the component once it exists, is enabled and visible
func (el *Element) Click() error {
	err := el.prepare()
	if err != nil {
		return err
	}

	el.log("click", "")
	return el.driver().Click(el.ctx, el.Selector(), 0, MouseLeft)
}

// RightClick the component once it exists and is enabled
func (el *Element) RightClick() error {
	err := el.WaitExisting()
	if err != nil {
		return err
	}

	err = el.WaitEnabled()
	if err != nil {
		return err
	}

	el.log("right click", "")
	return el.driver().Click(el.ctx, el.Selector(), 0, MouseRight)
}

// Hover the component once it exists, is enabled and visible
func (el *Element) Hover() error {
	err := el.prepare()
	if err != nil {
		return err
	}

	el.log("hover", "")
	return el.driver().Hover(el.ctx, el.Selector(), 0)
}

// ClickAll clicks every element the component matches
func (el *Element) ClickAll() error {
	err := el.WaitExisting()
	if err != nil {
		return err
	}

	n, err := el.Count()
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		el.log("click", strconv.Itoa(i))
		err = el.driver().Click(el.ctx, el.Selector(), i, MouseLeft)
		if err != nil {
			return err
		}
	}
	return nil
}

// ClickWithText clicks the first matching element that contains the text
func (el *Element) ClickWithText(text string) error {
	err := el.WaitExisting()
	if err != nil {
		return err
	}

	el.log("click", "with text: "+text)
	return el.driver().Click(el.ctx, el.Selector().WithText(text), 0, MouseLeft)
}

// ScrollTo scrolls the component into view
func (el *Element) ScrollTo() error {
	err := el.WaitExisting()
	if err != nil {
		return err
	}

	el.log("scroll to", "")
	return el.driver().ScrollIntoView(el.ctx, el.Selector(), 0)
}

// TextContent of the component and its descendants
func (el *Element) TextContent() (string, error) {
	err := el.WaitExisting()
	if err != nil {
		return "", err
	}
	return el.driver().Text(el.ctx, el.Selector(), 0)
}

// TextFromAll returns the non-empty text content of every matching element
func (el *Element) TextFromAll() ([]string, error) {
	return el.textFromAll(el.Selector())
}

func (el *Element) textFromAll(sel Selector) ([]string, error) {
	err := el.WaitExisting()
	if err != nil {
		return nil, err
	}

	n, err := el.driver().Count(el.ctx, sel)
	if err != nil {
		return nil, err
	}

	list := []string{}
	for i := 0; i < n; i++ {
		text, err := el.driver().Text(el.ctx, sel, i)
		if err != nil {
			return nil, err
		}
		if text != "" {
			list = append(list, text)
		}
	}
	return list, nil
}

// Attributes of the component
func (el *Element) Attributes() (Attributes, error) {
	err := el.WaitExisting()
	if err != nil {
		return nil, err
	}
	return el.driver().Attributes(el.ctx, el.Selector(), 0)
}

// StyleProperty returns the computed value of the css property, no wait
func (el *Element) StyleProperty(name string) (string, error) {
	return el.driver().StyleProperty(el.ctx, el.Selector(), 0, name)
}

// Color of the component, the property defaults to "color"
func (el *Element) Color(property ...string) (string, error) {
	return el.StyleProperty(first(property, "color"))
}

// BackgroundColor of the component, the property defaults to "background-color"
func (el *Element) BackgroundColor(property ...string) (string, error) {
	return el.StyleProperty(first(property, "background-color"))
}

// WaitStyle returns true if the css property equals the expected value before the wait times out
func (el *Element) WaitStyle(name, expected string) (bool, error) {
	return el.WaitFor(func(context.Context) (bool, error) {
		v, err := el.StyleProperty(name)
		return v == expected, err
	})
}

// AssertStyle waits until the css property equals the expected value,
// otherwise it returns a ComponentError with the last value it read
func (el *Element) AssertStyle(name, expected string) error {
	return el.Assert(func(context.Context) error {
		v, err := el.StyleProperty(name)
		if err != nil {
			return err
		}
		if v != expected {
			e := newComponentError(el.desc, ReasonStyleMismatch)
			e.Details = fmt.Sprintf("%s is %q, expected %q", name, v, expected)
			return e
		}
		return nil
	})
}

func first(list []string, def string) string {
	if len(list) > 0 {
		return list[0]
	}
	return def
}
