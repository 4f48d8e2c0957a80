package pom_test

import (
	"github.com/go-rod/pom"
	"github.com/go-rod/pom/lib/uitest"
)

func (s *S) TestSendKeys() {
	d := s.child("input.email", "Email", pom.RoleInput)
	s.driver.Set(d.Selector(), &uitest.Node{Value: "old"})
	in := s.sess.Input(d)

	s.NoError(in.SendKeys("new"))
	s.Equal("new", s.driver.Node(d.Selector(), 0).Value)
	s.Equal(pom.TypeOptions{Replace: true}, s.driver.Node(d.Selector(), 0).TypeOptions)

	text, err := in.TextContent()
	s.NoError(err)
	s.Equal("new", text)

	s.NoError(in.SendKeys("!", pom.SendKeysOptions{Append: true}))
	s.Equal("new!", in.MustText())
}

func (s *S) TestSendKeysSameValue() {
	d := s.child("input.email", "Email", pom.RoleInput)
	s.driver.Set(d.Selector(), &uitest.Node{Value: "same"})

	s.NoError(s.sess.Input(d).SendKeys("same", pom.SendKeysOptions{Clean: true}))
	s.Equal(0, s.driver.Calls("Type", d.Selector()))
	s.Equal(0, s.driver.Calls("Clear", d.Selector()))
}

func (s *S) TestSendKeysClean() {
	d := s.child("input.email", "Email", pom.RoleInput)
	s.driver.Set(d.Selector(), &uitest.Node{Value: "old"})

	s.sess.Input(d).MustSendKeys("a", pom.SendKeysOptions{Clean: true, Append: true})
	s.Equal(1, s.driver.Calls("Clear", d.Selector()))
	s.Equal(1, s.driver.Calls("Click", d.Selector()))
	s.Equal("a", s.driver.Node(d.Selector(), 0).Value)
}

func (s *S) TestSendKeysNumber() {
	d := s.child("input.age", "Age", pom.RoleInput)
	s.driver.Set(d.Selector(), &uitest.Node{Attrs: pom.Attributes{"type": "number"}})

	s.NoError(s.sess.Input(d).SendKeys("42"))
	s.Equal(pom.TypeOptions{Replace: true, Paste: true}, s.driver.Node(d.Selector(), 0).TypeOptions)
}

func (s *S) TestSendKeysDisabled() {
	d := s.child("input.email", "Email", pom.RoleInput)
	s.driver.Set(d.Selector(), &uitest.Node{Attrs: pom.Attributes{"aria-disabled": "true"}})

	s.True(pom.IsComponentError(s.sess.Input(d).SendKeys("x"), pom.ReasonDisabled))
	s.Equal(0, s.driver.Calls("Type", d.Selector()))
}

func (s *S) TestDropdownOpen() {
	type row struct {
		attrs pom.Attributes
		click bool
	}

	for _, r := range []row{
		{pom.Attributes{"class": "dropdown"}, true},
		{pom.Attributes{"class": "dropdown dropdown--opened"}, false},
		{pom.Attributes{"class": "dropdown open", "aria-expanded": "true"}, false},
		{pom.Attributes{"class": "dropdown open", "aria-expanded": "false"}, true},
		{pom.Attributes{"class": "dropdown", "aria-expanded": "true"}, true},
	} {
		d := s.child(".dropdown", "TLD", pom.RoleDropdown)
		s.driver.Set(d.Selector(), &uitest.Node{Attrs: r.attrs})
		before := s.driver.Calls("Click", d.Selector())

		s.sess.Dropdown(d).MustOpen()

		clicks := s.driver.Calls("Click", d.Selector()) - before
		if r.click {
			s.Equal(1, clicks, "%v", r.attrs)
		} else {
			s.Equal(0, clicks, "%v", r.attrs)
		}
	}
}

func (s *S) TestDropdownOptions() {
	d := s.child(".dropdown", "TLD", pom.RoleDropdown)
	items := d.Selector().Descendants(pom.DropdownItem)
	s.driver.Set(d.Selector(), &uitest.Node{})
	s.driver.Set(items, &uitest.Node{Text: ".com"}, &uitest.Node{Text: ".org"}, &uitest.Node{Text: "other"})

	dd := s.sess.Dropdown(d)
	s.Equal([]string{".com", ".org", "other"}, dd.MustOptionValues())

	selected := -1
	s.driver.OnClick(items, func(nth int, _ pom.MouseButton) { selected = nth })
	dd.MustSelectByIndex(1)
	s.Equal(1, selected)

	s.Error(dd.SelectByIndex(5))
}

func (s *S) TestCheckbox() {
	d := s.child(".checkbox", "Interests", pom.RoleCheckbox)
	s.driver.Set(d.Selector(), &uitest.Node{}, &uitest.Node{})
	s.driver.Set(d.Selector().Siblings(), &uitest.Node{Text: "Ponies"}, &uitest.Node{Text: "Select all"})

	cb := s.sess.Checkbox(d)
	s.Equal([]string{"Ponies", "Select all"}, cb.MustOptionValues())

	cb.MustSelectByIndex(1)
	s.Equal(1, s.driver.Calls("Click", d.Selector()))

	var e *pom.ElementNotFoundError
	s.ErrorAs(cb.SelectByIndex(2), &e)
	s.Equal(2, e.Count)
}

func (s *S) TestKinds() {
	s.driver.Set(s.form.Selector(), &uitest.Node{Text: "form"})
	s.driver.Set(pom.CSS(".label"), &uitest.Node{Text: "label"})

	s.Equal("form", s.sess.Form(s.form).MustText())
	s.Equal("label", s.sess.Label(s.child(".label", "Title", pom.RoleLabel)).MustText())

	el := s.sess.MustComponent(pom.CSS(".label"), "Title", pom.RoleLabel, s.form)
	s.Equal("Game page (Page) / Login (Form) / Title (Label)", el.String())
	s.Equal(pom.CSS(".label"), el.Selector())
	s.Equal("Title", el.Descriptor().Name())
}
