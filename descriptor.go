package pom

import (
	"fmt"
	"strings"
)

// Role of a UI component, it's used in error messages and logs
type Role string

const (
	// RolePage type
	RolePage Role = "Page"
	// RoleForm type
	RoleForm Role = "Form"
	// RoleButton type
	RoleButton Role = "Button"
	// RoleInput type
	RoleInput Role = "Input"
	// RoleDropdown type
	RoleDropdown Role = "Dropdown"
	// RoleCheckbox type
	RoleCheckbox Role = "CheckBox"
	// RoleLabel type
	RoleLabel Role = "Label"
)

// Selector locates a list of elements. The zero value of every field except CSS means "unused".
type Selector struct {
	// CSS selector
	CSS string

	// Text keeps only the elements whose text content contains it
	Text string

	// Find replaces each element with its descendants that match the css selector
	Find string

	// NextSibling replaces each element with its next element sibling
	NextSibling bool
}

// CSS creates a selector from a css selector
func CSS(css string) Selector {
	return Selector{CSS: css}
}

// WithText clones the selector and keeps only the elements that contain the text
func (s Selector) WithText(text string) Selector {
	s.Text = text
	return s
}

// Descendants clones the selector and selects the descendants that match the css selector
func (s Selector) Descendants(css string) Selector {
	s.Find = css
	return s
}

// Siblings clones the selector and selects the next element sibling of each element
func (s Selector) Siblings() Selector {
	s.NextSibling = true
	return s
}

// String is a human readable form, it's also stable enough to be used as a map key
func (s Selector) String() string {
	out := s.CSS
	if s.Text != "" {
		out += fmt.Sprintf(" :text(%q)", s.Text)
	}
	if s.Find != "" {
		out += fmt.Sprintf(" :find(%q)", s.Find)
	}
	if s.NextSibling {
		out += " :next-sibling"
	}
	return out
}

// Descriptor describes a UI component and its place in the component tree.
// It's immutable, the parent is only used to build the containment chain and nested selectors.
type Descriptor struct {
	selector Selector
	name     string
	role     Role
	nested   bool
	parent   *Descriptor
}

// DescriptorError is returned when a descriptor is created with missing values
type DescriptorError struct {
	Selector Selector
	Name     string
	Role     Role
	Parent   *Descriptor
}

// Error interface
func (e *DescriptorError) Error() string {
	parent := "<nil>"
	if e.Parent != nil {
		parent = e.Parent.name + " " + string(e.Parent.role)
	}
	return fmt.Sprintf("component requires a name, a role and a parent (a page doesn't need a parent), got:\n"+
		"selector = %s\nname = %s\nrole = %s\nparent = %s",
		e.Selector, e.Name, e.Role, parent)
}

// NewDescriptor validates the values and creates a descriptor.
// Every role except RolePage requires a parent.
func NewDescriptor(selector Selector, name string, role Role, parent *Descriptor) (*Descriptor, error) {
	if name == "" || role == "" || (role != RolePage && parent == nil) {
		return nil, &DescriptorError{selector, name, role, parent}
	}

	return &Descriptor{
		selector: selector,
		name:     name,
		role:     role,
		parent:   parent,
	}, nil
}

// Page creates the root descriptor of a page
func Page(css, name string) *Descriptor {
	d, err := NewDescriptor(CSS(css), name, RolePage, nil)
	if err != nil {
		panic(err)
	}
	return d
}

// Child creates a descriptor under d. It panics if name or role is empty.
func (d *Descriptor) Child(selector Selector, name string, role Role) *Descriptor {
	child, err := NewDescriptor(selector, name, role, d)
	if err != nil {
		panic(err)
	}
	return child
}

// Nested clones the descriptor, the selector of the clone is prefixed by the css of its ancestors
func (d *Descriptor) Nested() *Descriptor {
	c := *d
	c.nested = true
	return &c
}

// Name of the component
func (d *Descriptor) Name() string { return d.name }

// Role of the component
func (d *Descriptor) Role() Role { return d.role }

// Parent of the component, nil for a page
func (d *Descriptor) Parent() *Descriptor { return d.parent }

// Selector to locate the component
func (d *Descriptor) Selector() Selector {
	if !d.nested {
		return d.selector
	}

	list := []string{d.selector.CSS}
	for p := d.parent; p != nil; p = p.parent {
		if p.selector.CSS != "" {
			list = append([]string{p.selector.CSS}, list...)
		}
	}

	s := d.selector
	s.CSS = strings.Join(list, " ")
	return s
}

// Ancestors from the root to the parent
func (d *Descriptor) Ancestors() []*Descriptor {
	list := []*Descriptor{}
	for p := d.parent; p != nil; p = p.parent {
		list = append([]*Descriptor{p}, list...)
	}
	return list
}

// Chain is the human readable location of the component, such as
// "Game page (Page) / Login form (Label)"
func (d *Descriptor) Chain() string {
	toName := func(c *Descriptor) string {
		if c.role == "" {
			return c.name
		}
		return fmt.Sprintf("%s (%s)", c.name, c.role)
	}

	list := []string{}
	for _, c := range d.Ancestors() {
		list = append(list, toName(c))
	}
	list = append(list, toName(d))

	return strings.Join(list, " / ")
}

// String interface
func (d *Descriptor) String() string {
	return d.Chain()
}
