package pom

import "strconv"

// DropdownItem is the css class of a dropdown option
const DropdownItem = ".dropdown__list-item"

// Dropdown component
type Dropdown struct {
	*Element
}

func (dd *Dropdown) items() Selector {
	return dd.Selector().Descendants(DropdownItem)
}

// Open the dropdown if it isn't open yet.
// A dropdown is open when its class contains "open" and aria-expanded is "true" or absent.
func (dd *Dropdown) Open() error {
	attrs, err := dd.Attributes()
	if err != nil {
		return err
	}

	if attrs.ClassContains("open") &&
		(!attrs.Has("aria-expanded") || attrs.Get("aria-expanded") == "true") {
		return nil
	}
	return dd.Click()
}

// SelectByIndex clicks the option at the 0-based index
func (dd *Dropdown) SelectByIndex(i int) error {
	err := dd.WaitExisting()
	if err != nil {
		return err
	}

	dd.log("select", strconv.Itoa(i))
	return dd.driver().Click(dd.ctx, dd.items(), i, MouseLeft)
}

// OptionValues returns the text of every option
func (dd *Dropdown) OptionValues() ([]string, error) {
	return optionValues(dd.Element, dd.items())
}

func optionValues(el *Element, sel Selector) ([]string, error) {
	err := el.WaitExisting()
	if err != nil {
		return nil, err
	}

	n, err := el.driver().Count(el.ctx, sel)
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, n)
	for i := 0; i < n; i++ {
		text, err := el.driver().Text(el.ctx, sel, i)
		if err != nil {
			return nil, err
		}
		list = append(list, text)
	}
	return list, nil
}
