package pom_test

import (
	"context"
	"errors"
	"time"

	"github.com/go-rod/pom"
	"github.com/go-rod/pom/lib/uitest"
)

func (s *S) TestEnabledRule() {
	type row struct {
		attrs    pom.Attributes
		enabled  bool
		disabled bool
	}

	for _, r := range []row{
		{pom.Attributes{}, true, false},
		{pom.Attributes{"disabled": ""}, false, true},
		{pom.Attributes{"class": "button button--disabled"}, false, true},
		{pom.Attributes{"aria-disabled": "true"}, false, true},
		{pom.Attributes{"aria-disabled": "false"}, true, false},
		{pom.Attributes{"aria-disabled": ""}, false, false},
		{pom.Attributes{"class": "button", "aria-disabled": "false"}, true, false},
		{pom.Attributes{"class": "button", "disabled": "disabled", "aria-disabled": "false"}, false, true},
	} {
		s.Equal(r.enabled, r.attrs.Enabled(), "%v", r.attrs)
		s.Equal(r.disabled, r.attrs.Disabled(), "%v", r.attrs)
	}
}

func (s *S) TestWaitExisting() {
	d := s.child(".next", "Next", pom.RoleButton)
	el := s.sess.Element(d).Within(time.Second)

	s.later(30*time.Millisecond, func() {
		s.driver.Set(d.Selector(), &uitest.Node{})
	})

	s.NoError(el.WaitExisting())
	s.GreaterOrEqual(s.driver.Calls("Count", d.Selector()), 2)

	ok, err := el.Exists()
	s.NoError(err)
	s.True(ok)

	ok, err = s.sess.IsSelectorExisting(d.Selector(), 0)
	s.NoError(err)
	s.True(ok)

	ok, err = s.sess.IsSelectorExisting(pom.CSS(".none"), 0)
	s.NoError(err)
	s.False(ok)
	s.Equal(1, s.driver.Calls("Count", pom.CSS(".none")))
}

func (s *S) TestWaitAbsent() {
	d := s.child(".spinner", "Spinner", pom.RoleLabel)
	s.driver.Set(d.Selector(), &uitest.Node{})
	el := s.sess.Element(d)

	s.True(pom.IsComponentError(el.WaitAbsent(), pom.ReasonNotAbsent))

	s.later(20*time.Millisecond, func() { s.driver.Remove(d.Selector()) })
	s.NoError(el.Within(time.Second).WaitAbsent())
}

func (s *S) TestWaitEnabled() {
	d := s.child(".next", "Next", pom.RoleButton)
	s.driver.Set(d.Selector(), &uitest.Node{Attrs: pom.Attributes{"class": "button disabled"}})
	el := s.sess.Element(d)

	err := el.WaitEnabled()
	s.True(pom.IsComponentError(err, pom.ReasonDisabled))
	s.EqualError(err, `The "Next" button is disabled at "Game page (Page) / Login (Form) / Next (Button)"`)
	s.NoError(el.WaitDisabled())

	s.later(20*time.Millisecond, func() {
		s.driver.Update(d.Selector(), 0, func(n *uitest.Node) { n.Attrs["class"] = "button" })
	})
	s.NoError(el.Within(time.Second).WaitEnabled())

	err = el.WaitDisabled()
	s.True(pom.IsComponentError(err, pom.ReasonEnabled))
}

func (s *S) TestWaitEnabledMissing() {
	el := s.sess.Element(s.child(".next", "Next", pom.RoleButton))
	s.True(pom.IsComponentError(el.WaitEnabled(), pom.ReasonNotExist))
}

func (s *S) TestBrokenPredicate() {
	d := s.child(".next", "Next", pom.RoleButton)
	errBoom := errors.New("boom")
	s.driver.Fail("Count", errBoom)

	err := s.sess.Element(d).Within(time.Minute).WaitExisting()
	s.ErrorIs(err, errBoom)
	s.Equal(1, s.driver.Calls("Count", d.Selector()))
}

func (s *S) TestClick() {
	d := s.child(".next", "Next", pom.RoleButton)
	clicked := 0
	s.driver.Set(d.Selector(), &uitest.Node{}).OnClick(d.Selector(), func(nth int, b pom.MouseButton) {
		s.Equal(0, nth)
		if b == pom.MouseLeft {
			clicked++
		}
	})

	btn := s.sess.Button(d)
	s.NoError(btn.Click())
	s.NoError(btn.Hover())
	s.NoError(btn.RightClick())
	s.NoError(btn.ScrollTo())
	s.Equal(1, clicked)
	s.Equal(1, s.driver.Calls("Hover", d.Selector()))
	s.Equal(1, s.driver.Calls("ScrollIntoView", d.Selector()))
}

func (s *S) TestClickDisabled() {
	d := s.child(".next", "Next", pom.RoleButton)
	s.driver.Set(d.Selector(), &uitest.Node{Attrs: pom.Attributes{"disabled": ""}})

	s.True(pom.IsComponentError(s.sess.Button(d).Click(), pom.ReasonDisabled))
	s.Equal(0, s.driver.Calls("Click", d.Selector()))
}

func (s *S) TestClickHidden() {
	d := s.child(".next", "Next", pom.RoleButton)
	s.driver.Set(d.Selector(), &uitest.Node{Hidden: true})
	el := s.sess.Element(d)

	s.True(pom.IsComponentError(el.Click(), pom.ReasonNotVisible))
	s.EqualError(el.AssertVisible(), `The "Next" button is not visible at "Game page (Page) / Login (Form) / Next (Button)"`)
	s.Equal(0, s.driver.Calls("Click", d.Selector()))

	s.NoError(el.Unchecked().Click())
	s.Equal(1, s.driver.Calls("Click", d.Selector()))
}

func (s *S) TestClickAll() {
	d := s.child(".tile", "Tiles", pom.RoleButton)
	s.driver.Set(d.Selector(), &uitest.Node{}, &uitest.Node{}, &uitest.Node{})

	s.NoError(s.sess.Element(d).ClickAll())
	s.Equal(3, s.driver.Calls("Click", d.Selector()))

	n, err := s.sess.Element(d).Count()
	s.NoError(err)
	s.Equal(3, n)
}

func (s *S) TestClickWithText() {
	d := s.child("a", "Links", pom.RoleButton)
	s.driver.Set(d.Selector(), &uitest.Node{Text: "x"})
	s.driver.Set(d.Selector().WithText("next"), &uitest.Node{Text: "next"})

	s.NoError(s.sess.Element(d).ClickWithText("next"))
	s.Equal(1, s.driver.Calls("Click", d.Selector().WithText("next")))
	s.Equal(0, s.driver.Calls("Click", d.Selector()))
}

func (s *S) TestText() {
	d := s.child("li", "Items", pom.RoleLabel)
	s.driver.Set(d.Selector(), &uitest.Node{Text: "a"}, &uitest.Node{}, &uitest.Node{Text: "c"})
	el := s.sess.Element(d)

	text, err := el.TextContent()
	s.NoError(err)
	s.Equal("a", text)

	list, err := el.TextFromAll()
	s.NoError(err)
	s.Equal([]string{"a", "c"}, list)

	s.Equal("a", el.MustText())
}

func (s *S) TestStyle() {
	d := s.child(".help", "Help", pom.RoleForm)
	s.driver.Set(d.Selector(), &uitest.Node{Style: map[string]string{
		"color":            "rgb(0, 128, 0)",
		"background-color": "rgb(255, 255, 255)",
		"height":           "120px",
	}})
	el := s.sess.Element(d)

	c, err := el.Color()
	s.NoError(err)
	s.Equal("rgb(0, 128, 0)", c)

	c, err = el.BackgroundColor()
	s.NoError(err)
	s.Equal("rgb(255, 255, 255)", c)

	c, err = el.Color("height")
	s.NoError(err)
	s.Equal("120px", c)

	ok, err := el.WaitStyle("height", "0px")
	s.NoError(err)
	s.False(ok)

	err = el.AssertStyle("height", "0px")
	s.True(pom.IsComponentError(err, pom.ReasonStyleMismatch))
	s.EqualError(err, `The "Help" form has unexpected style at "Game page (Page) / Login (Form) / Help (Form)": height is "120px", expected "0px"`)

	s.later(20*time.Millisecond, func() {
		s.driver.Update(d.Selector(), 0, func(n *uitest.Node) { n.Style["height"] = "0px" })
	})
	s.NoError(el.Within(time.Second).AssertStyle("height", "0px"))

	ok, err = el.WaitStyle("height", "0px")
	s.NoError(err)
	s.True(ok)
}

func (s *S) TestAttributes() {
	d := s.child("input", "Email", pom.RoleInput)
	s.driver.Set(d.Selector(), &uitest.Node{Attrs: pom.Attributes{"type": "text", "class": "a b"}})

	attrs, err := s.sess.Element(d).Attributes()
	s.NoError(err)
	s.Equal("text", attrs.Get("type"))
	s.True(attrs.Has("class"))
	s.False(attrs.Has("placeholder"))
	s.True(attrs.ClassContains("b"))
}

func (s *S) TestContext() {
	d := s.child(".next", "Next", pom.RoleButton)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	el := s.sess.Element(d).Within(time.Minute).Context(ctx)
	s.Equal(ctx, el.GetContext())
	s.ErrorIs(el.WaitExisting(), context.Canceled)

	el = s.sess.Element(d).Within(time.Minute).Timeout(30 * time.Millisecond)
	s.ErrorIs(el.WaitExisting(), context.DeadlineExceeded)
	el.CancelTimeout()

	sess := s.sess.Context(ctx)
	s.Equal(ctx, sess.GetContext())
	s.Equal(s.sess, s.sess.Context(s.sess.GetContext()))
}

func (s *S) TestAssert() {
	el := s.sess.Element(s.child(".x", "X", pom.RoleLabel))
	errNotReady := errors.New("X not ready")

	err := el.Within(30 * time.Millisecond).Assert(func(context.Context) error {
		return errNotReady
	})
	s.Equal(errNotReady, err)

	n := 0
	ok, err := el.WaitFor(func(context.Context) (bool, error) {
		n++
		return n == 3, nil
	})
	s.NoError(err)
	s.True(ok)
	s.Equal(3, n)
}

func (s *S) TestNavigate() {
	s.NoError(s.sess.Navigate("http://example.com"))
	s.Equal("http://example.com", s.driver.URL())
	s.Equal(s.driver, s.sess.Driver())
}

func (s *S) TestMust() {
	d := s.child(".next", "Next", pom.RoleButton)
	el := s.sess.Element(d)

	s.Panics(func() { el.MustWaitExisting() })
	s.False(el.MustIsExisting())

	s.driver.Set(d.Selector(), &uitest.Node{Text: "Next", Style: map[string]string{"color": "red"}})
	el.MustWaitExisting().MustWaitEnabled().MustClick().MustHover()
	s.Equal("red", el.MustStyleProperty("color"))
	s.Equal("Next", el.MustText())
	s.NotNil(el.MustAttributes())
	s.True(s.sess.MustIsSelectorExisting(d.Selector()))
	s.sess.MustNavigate("about:blank")
	s.Panics(func() { el.MustWaitDisabled() })
}
