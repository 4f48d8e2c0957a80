package pom

import "strconv"

// Checkbox component, its selector usually matches a list of checkboxes
// and the label of each one is its next sibling.
type Checkbox struct {
	*Element
}

// OptionValues returns the label of every checkbox
func (cb *Checkbox) OptionValues() ([]string, error) {
	return optionValues(cb.Element, cb.Selector().Siblings())
}

// SelectByIndex clicks the checkbox at the 0-based index
func (cb *Checkbox) SelectByIndex(i int) error {
	err := cb.WaitExisting()
	if err != nil {
		return err
	}

	cb.log("select", strconv.Itoa(i))
	return cb.driver().Click(cb.ctx, cb.Selector(), i, MouseLeft)
}
