package pages_test

import (
	"context"
	"testing"

	"github.com/go-rod/pom"
	"github.com/go-rod/pom/lib/defaults"
	"github.com/go-rod/pom/lib/fixture"
	"github.com/go-rod/pom/lib/testdata"
	"github.com/go-rod/pom/pages"
	"github.com/go-rod/rod/lib/launcher"
	"go.uber.org/zap/zaptest"
)

// browser runs the scenario against the fixture site in a real browser
func (t T) browser(sc pages.Scenario) {
	tt := t.Testable.(*testing.T)
	if testing.Short() {
		tt.Skip("browser scenarios are skipped in short mode")
	}
	if defaults.Remote == "" && defaults.Bin == "" {
		if _, has := launcher.LookPath(); !has {
			tt.Skip("no browser found")
		}
	}

	logger := zaptest.NewLogger(tt)

	data, err := testdata.Default()
	t.E(err)

	srv, err := fixture.Serve("127.0.0.1:0", logger)
	t.E(err)
	tt.Cleanup(func() { _ = srv.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	tt.Cleanup(cancel)

	b, err := pom.Launch(ctx, logger)
	t.E(err)
	tt.Cleanup(b.Close)

	s, err := b.Session()
	t.E(err)

	t.E(sc.Exec(s.WaitTimeout(data.Timeout), srv.URL, data))
}

func (t T) Registration() {
	t.browser(pages.Scenario{Name: "Registration", Run: pages.Registration})
}

func (t T) HideHelp() {
	t.browser(pages.Scenario{Name: "Hide help form", Run: pages.HideHelp})
}

func (t T) AcceptCookiesInBrowser() {
	t.browser(pages.Scenario{Name: "Accept cookies", Run: pages.AcceptCookies})
}

func (t T) CheckTimer() {
	t.browser(pages.Scenario{Name: "Check timer placeholder", Run: pages.CheckTimer})
}

func (t T) ScenarioList() {
	list := pages.Scenarios()
	t.Len(list, 4)
	t.Eq(list[0].Name, "Registration")
}
