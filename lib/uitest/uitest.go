// Package uitest is an in-memory pom.Driver. A test scripts the page by
// setting the list of nodes each selector matches.
package uitest

import (
	"context"
	"sync"

	"github.com/go-rod/pom"
)

// Node is a fake element
type Node struct {
	Attrs  pom.Attributes
	Style  map[string]string
	Text   string
	Value  string
	Hidden bool

	// TypeOptions of the last Type call
	TypeOptions pom.TypeOptions
}

// Driver is a scripted pom.Driver, it's safe for concurrent use
type Driver struct {
	lock    sync.Mutex
	url     string
	nodes   map[string][]*Node
	onClick map[string]func(nth int, button pom.MouseButton)
	errs    map[string]error
	calls   map[string]int
}

var _ pom.Driver = &Driver{}

// New driver with an empty page
func New() *Driver {
	return &Driver{
		nodes:   map[string][]*Node{},
		onClick: map[string]func(int, pom.MouseButton){},
		errs:    map[string]error{},
		calls:   map[string]int{},
	}
}

// Set the nodes the selector matches
func (d *Driver) Set(sel pom.Selector, nodes ...*Node) *Driver {
	d.lock.Lock()
	defer d.lock.Unlock()

	for _, n := range nodes {
		if n.Attrs == nil {
			n.Attrs = pom.Attributes{}
		}
		if n.Style == nil {
			n.Style = map[string]string{}
		}
	}
	d.nodes[sel.String()] = nodes
	return d
}

// Remove the nodes of the selector
func (d *Driver) Remove(sel pom.Selector) *Driver {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.nodes, sel.String())
	return d
}

// Update the node, it's a no-op if the node doesn't exist
func (d *Driver) Update(sel pom.Selector, nth int, fn func(*Node)) {
	d.lock.Lock()
	defer d.lock.Unlock()

	list := d.nodes[sel.String()]
	if nth < len(list) {
		fn(list[nth])
	}
}

// Node returns a copy of the node, nil if it doesn't exist
func (d *Driver) Node(sel pom.Selector, nth int) *Node {
	d.lock.Lock()
	defer d.lock.Unlock()

	list := d.nodes[sel.String()]
	if nth >= len(list) {
		return nil
	}
	n := *list[nth]
	return &n
}

// OnClick calls fn after an element of the selector is clicked.
// The driver is unlocked while fn runs, so fn can script the page.
func (d *Driver) OnClick(sel pom.Selector, fn func(nth int, button pom.MouseButton)) *Driver {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.onClick[sel.String()] = fn
	return d
}

// Fail makes every call of the method return err, nil removes the failure
func (d *Driver) Fail(method string, err error) *Driver {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err == nil {
		delete(d.errs, method)
	} else {
		d.errs[method] = err
	}
	return d
}

// Calls returns how many times the method has been called with the selector
func (d *Driver) Calls(method string, sel pom.Selector) int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.calls[method+" "+sel.String()]
}

// URL of the last navigation
func (d *Driver) URL() string {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.url
}

// node records the call and returns the node, the caller must hold the lock
func (d *Driver) node(method string, sel pom.Selector, nth int) (*Node, error) {
	d.calls[method+" "+sel.String()]++

	if err := d.errs[method]; err != nil {
		return nil, err
	}

	list := d.nodes[sel.String()]
	if nth < 0 || nth >= len(list) {
		return nil, &pom.ElementNotFoundError{Selector: sel, Nth: nth, Count: len(list)}
	}
	return list[nth], nil
}

// Navigate interface
func (d *Driver) Navigate(ctx context.Context, url string) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.errs["Navigate"]; err != nil {
		return err
	}
	d.url = url
	return nil
}

// Count interface
func (d *Driver) Count(ctx context.Context, sel pom.Selector) (int, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.calls["Count "+sel.String()]++

	if err := d.errs["Count"]; err != nil {
		return 0, err
	}
	return len(d.nodes[sel.String()]), nil
}

// Visible interface
func (d *Driver) Visible(ctx context.Context, sel pom.Selector, nth int) (bool, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("Visible", sel, nth)
	if err != nil {
		return false, err
	}
	return !n.Hidden, nil
}

// Attributes interface
func (d *Driver) Attributes(ctx context.Context, sel pom.Selector, nth int) (pom.Attributes, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("Attributes", sel, nth)
	if err != nil {
		return nil, err
	}

	attrs := pom.Attributes{}
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	return attrs, nil
}

// StyleProperty interface
func (d *Driver) StyleProperty(ctx context.Context, sel pom.Selector, nth int, name string) (string, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("StyleProperty", sel, nth)
	if err != nil {
		return "", err
	}
	return n.Style[name], nil
}

// Text interface
func (d *Driver) Text(ctx context.Context, sel pom.Selector, nth int) (string, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("Text", sel, nth)
	if err != nil {
		return "", err
	}
	return n.Text, nil
}

// Value interface
func (d *Driver) Value(ctx context.Context, sel pom.Selector, nth int) (string, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("Value", sel, nth)
	if err != nil {
		return "", err
	}
	return n.Value, nil
}

// Click interface
func (d *Driver) Click(ctx context.Context, sel pom.Selector, nth int, button pom.MouseButton) error {
	d.lock.Lock()
	_, err := d.node("Click", sel, nth)
	fn := d.onClick[sel.String()]
	d.lock.Unlock()

	if err != nil {
		return err
	}
	if fn != nil {
		fn(nth, button)
	}
	return nil
}

// Hover interface
func (d *Driver) Hover(ctx context.Context, sel pom.Selector, nth int) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	_, err := d.node("Hover", sel, nth)
	return err
}

// ScrollIntoView interface
func (d *Driver) ScrollIntoView(ctx context.Context, sel pom.Selector, nth int) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	_, err := d.node("ScrollIntoView", sel, nth)
	return err
}

// Type interface
func (d *Driver) Type(ctx context.Context, sel pom.Selector, nth int, text string, opts pom.TypeOptions) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("Type", sel, nth)
	if err != nil {
		return err
	}

	n.TypeOptions = opts
	if opts.Replace {
		n.Value = text
	} else {
		n.Value += text
	}
	return nil
}

// Clear interface
func (d *Driver) Clear(ctx context.Context, sel pom.Selector, nth int) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	n, err := d.node("Clear", sel, nth)
	if err != nil {
		return err
	}
	n.Value = ""
	return nil
}
