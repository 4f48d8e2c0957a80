package pom

import (
	"context"

	"github.com/go-rod/pom/lib/defaults"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/cdp"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Browser is a rod browser configured by lib/defaults
type Browser struct {
	ctx      context.Context
	logger   *zap.Logger
	browser  *rod.Browser
	launcher *launcher.Launcher
	ws       *GorillaConn
}

// Launch a browser, or connect to defaults.Remote if it's set.
// The rod browser logs through the logger, nil means no log.
func Launch(ctx context.Context, logger *zap.Logger) (*Browser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Browser{ctx: ctx, logger: logger}

	u := defaults.Remote
	if u == "" {
		b.launcher = launcher.New().
			Context(ctx).
			Headless(!defaults.Show).
			Devtools(defaults.Devtools).
			Leakless(true)

		if defaults.Bin != "" {
			b.launcher = b.launcher.Bin(defaults.Bin)
		}

		var err error
		u, err = b.launcher.Launch()
		if err != nil {
			return nil, err
		}
	}

	rb := rod.New().
		Context(ctx).
		ControlURL(u).
		Trace(defaults.Trace).
		SlowMotion(defaults.Slow).
		Logger(zap.NewStdLog(logger))

	if defaults.WS == "gorilla" {
		ws, err := DialGorilla(ctx, u, nil)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.ws = ws
		rb = rb.Client(cdp.New().Start(ws))
	}

	err := rb.Connect()
	if err != nil {
		b.Close()
		return nil, err
	}
	b.browser = rb

	if defaults.Monitor != "" {
		monitor := b.browser.ServeMonitor(defaults.Monitor)
		logger.Info("monitor", zap.String("url", monitor))
		launcher.Open(monitor)
	}

	logger.Debug("browser connected", zap.String("url", u))

	return b, nil
}

// Rod browser
func (b *Browser) Rod() *rod.Browser {
	return b.browser
}

// Session opens a blank page and creates a session on it
func (b *Browser) Session() (*Session, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return New(NewRodDriver(page)).Logger(b.logger).Context(b.ctx), nil
}

// Close the browser and kill the process it launched
func (b *Browser) Close() {
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.ws != nil {
		b.ws.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}
