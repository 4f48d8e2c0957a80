// This file contains the methods that panic when the error return value is not nil.
// Their function names are all prefixed with Must.

package pom

import (
	"github.com/go-rod/rod/lib/utils"
)

// MustNavigate is similar to Session.Navigate
func (s *Session) MustNavigate(url string) *Session {
	utils.E(s.Navigate(url))
	return s
}

// MustComponent is similar to Session.Component
func (s *Session) MustComponent(sel Selector, name string, role Role, parent *Descriptor) *Element {
	el, err := s.Component(sel, name, role, parent)
	utils.E(err)
	return el
}

// MustIsSelectorExisting is similar to Session.IsSelectorExisting
func (s *Session) MustIsSelectorExisting(sel Selector) bool {
	ok, err := s.IsSelectorExisting(sel, s.timeout)
	utils.E(err)
	return ok
}

// MustIsExisting is similar to Element.IsExisting
func (el *Element) MustIsExisting() bool {
	ok, err := el.IsExisting()
	utils.E(err)
	return ok
}

// MustWaitExisting is similar to Element.WaitExisting
func (el *Element) MustWaitExisting() *Element {
	utils.E(el.WaitExisting())
	return el
}

// MustWaitAbsent is similar to Element.WaitAbsent
func (el *Element) MustWaitAbsent() *Element {
	utils.E(el.WaitAbsent())
	return el
}

// MustWaitEnabled is similar to Element.WaitEnabled
func (el *Element) MustWaitEnabled() *Element {
	utils.E(el.WaitEnabled())
	return el
}

// MustWaitDisabled is similar to Element.WaitDisabled
func (el *Element) MustWaitDisabled() *Element {
	utils.E(el.WaitDisabled())
	return el
}

// MustClick is similar to Element.Click
func (el *Element) MustClick() *Element {
	utils.E(el.Click())
	return el
}

// MustHover is similar to Element.Hover
func (el *Element) MustHover() *Element {
	utils.E(el.Hover())
	return el
}

// MustText is similar to Element.TextContent
func (el *Element) MustText() string {
	s, err := el.TextContent()
	utils.E(err)
	return s
}

// MustAttributes is similar to Element.Attributes
func (el *Element) MustAttributes() Attributes {
	a, err := el.Attributes()
	utils.E(err)
	return a
}

// MustStyleProperty is similar to Element.StyleProperty
func (el *Element) MustStyleProperty(name string) string {
	v, err := el.StyleProperty(name)
	utils.E(err)
	return v
}

// MustAssertStyle is similar to Element.AssertStyle
func (el *Element) MustAssertStyle(name, expected string) *Element {
	utils.E(el.AssertStyle(name, expected))
	return el
}

// MustText is similar to Input.TextContent
func (in *Input) MustText() string {
	s, err := in.TextContent()
	utils.E(err)
	return s
}

// MustSendKeys is similar to Input.SendKeys
func (in *Input) MustSendKeys(text string, opts ...SendKeysOptions) *Input {
	utils.E(in.SendKeys(text, opts...))
	return in
}

// MustOpen is similar to Dropdown.Open
func (dd *Dropdown) MustOpen() *Dropdown {
	utils.E(dd.Open())
	return dd
}

// MustSelectByIndex is similar to Dropdown.SelectByIndex
func (dd *Dropdown) MustSelectByIndex(i int) *Dropdown {
	utils.E(dd.SelectByIndex(i))
	return dd
}

// MustOptionValues is similar to Dropdown.OptionValues
func (dd *Dropdown) MustOptionValues() []string {
	list, err := dd.OptionValues()
	utils.E(err)
	return list
}

// MustSelectByIndex is similar to Checkbox.SelectByIndex
func (cb *Checkbox) MustSelectByIndex(i int) *Checkbox {
	utils.E(cb.SelectByIndex(i))
	return cb
}

// MustOptionValues is similar to Checkbox.OptionValues
func (cb *Checkbox) MustOptionValues() []string {
	list, err := cb.OptionValues()
	utils.E(err)
	return list
}
