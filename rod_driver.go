package pom

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
	"github.com/tidwall/gjson"
)

// resolve a Selector to the list of elements it matches
const jsResolve = `(css, text, find, sibling) => {
	let list = Array.from(document.querySelectorAll(css || 'html'))
	if (text) list = list.filter(e => (e.textContent || '').includes(text))
	if (find) list = list.flatMap(e => Array.from(e.querySelectorAll(find)))
	if (sibling) list = list.map(e => e.nextElementSibling).filter(e => e)
	return list
}`

const jsAttributes = `() => {
	const out = {}
	for (const a of this.attributes) out[a.name] = a.value
	return JSON.stringify(out)
}`

const jsStyle = `(name) => getComputedStyle(this).getPropertyValue(name)`

const jsText = `() => this.textContent || ''`

const jsValue = `() => this.value === undefined ? '' : String(this.value)`

// RodDriver implements Driver with a rod page
type RodDriver struct {
	page *rod.Page
}

var _ Driver = &RodDriver{}

// NewRodDriver for the page
func NewRodDriver(page *rod.Page) *RodDriver {
	return &RodDriver{page: page}
}

// Page under control
func (d *RodDriver) Page() *rod.Page {
	return d.page
}

func (d *RodDriver) elements(ctx context.Context, sel Selector) (rod.Elements, error) {
	list, err := d.page.Context(ctx).ElementsByJS(rod.Eval(jsResolve, sel.CSS, sel.Text, sel.Find, sel.NextSibling))
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", sel.String(), err)
	}
	return list, nil
}

func (d *RodDriver) nth(ctx context.Context, sel Selector, nth int) (*rod.Element, error) {
	list, err := d.elements(ctx, sel)
	if err != nil {
		return nil, err
	}
	if nth < 0 || nth >= len(list) {
		return nil, &ElementNotFoundError{Selector: sel, Nth: nth, Count: len(list)}
	}
	return list[nth], nil
}

func (d *RodDriver) evalString(ctx context.Context, sel Selector, nth int, js string, params ...interface{}) (string, error) {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return "", err
	}
	res, err := el.Eval(js, params...)
	if err != nil {
		return "", fmt.Errorf("eval on %q: %w", sel.String(), err)
	}
	return res.Value.Str(), nil
}

// Navigate interface
func (d *RodDriver) Navigate(ctx context.Context, url string) error {
	p := d.page.Context(ctx)
	err := p.Navigate(url)
	if err != nil {
		return err
	}
	return p.WaitLoad()
}

// Count interface
func (d *RodDriver) Count(ctx context.Context, sel Selector) (int, error) {
	list, err := d.elements(ctx, sel)
	return len(list), err
}

// Visible interface
func (d *RodDriver) Visible(ctx context.Context, sel Selector, nth int) (bool, error) {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return false, err
	}
	return el.Visible()
}

// Attributes interface
func (d *RodDriver) Attributes(ctx context.Context, sel Selector, nth int) (Attributes, error) {
	raw, err := d.evalString(ctx, sel, nth, jsAttributes)
	if err != nil {
		return nil, err
	}

	attrs := Attributes{}
	gjson.Parse(raw).ForEach(func(key, value gjson.Result) bool {
		attrs[key.String()] = value.String()
		return true
	})
	return attrs, nil
}

// StyleProperty interface
func (d *RodDriver) StyleProperty(ctx context.Context, sel Selector, nth int, name string) (string, error) {
	return d.evalString(ctx, sel, nth, jsStyle, name)
}

// Text interface
func (d *RodDriver) Text(ctx context.Context, sel Selector, nth int) (string, error) {
	return d.evalString(ctx, sel, nth, jsText)
}

// Value interface
func (d *RodDriver) Value(ctx context.Context, sel Selector, nth int) (string, error) {
	return d.evalString(ctx, sel, nth, jsValue)
}

// Click interface
func (d *RodDriver) Click(ctx context.Context, sel Selector, nth int, button MouseButton) error {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return err
	}

	b := proto.InputMouseButtonLeft
	if button == MouseRight {
		b = proto.InputMouseButtonRight
	}
	return el.Click(b, 1)
}

// Hover interface
func (d *RodDriver) Hover(ctx context.Context, sel Selector, nth int) error {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return err
	}
	return el.Hover()
}

// ScrollIntoView interface
func (d *RodDriver) ScrollIntoView(ctx context.Context, sel Selector, nth int) error {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return err
	}
	return el.ScrollIntoView()
}

// Type interface. Without opts.Paste the text is inserted one rune at a time.
func (d *RodDriver) Type(ctx context.Context, sel Selector, nth int, text string, opts TypeOptions) error {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return err
	}

	err = el.Focus()
	if err != nil {
		return err
	}

	if opts.Replace {
		err = el.SelectAllText()
		if err != nil {
			return err
		}
	}

	if opts.Paste {
		return el.Input(text)
	}

	p := d.page.Context(ctx)
	for _, r := range text {
		err = p.InsertText(string(r))
		if err != nil {
			return err
		}
	}
	return nil
}

// Clear interface
func (d *RodDriver) Clear(ctx context.Context, sel Selector, nth int) error {
	el, err := d.nth(ctx, sel, nth)
	if err != nil {
		return err
	}

	err = el.SelectAllText()
	if err != nil {
		return err
	}
	return el.Type(input.Backspace)
}
