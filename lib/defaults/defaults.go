// Package defaults holds some commonly used options parsed from env var "pom".
// Set them will set the default value of options used by pom.
// Each value is separated by a ",", key and value are separated by "=",
// For example:
//
//    pom=show,trace,slow,monitor
//
//    pom=show,trace,slow=1s,timeout=5s,interval=100ms,url=http://127.0.0.1:8080/
//
package defaults

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Show is the inverse of launcher.Launcher.Headless
var Show bool

// Devtools is the default of launcher.Launcher.Devtools
var Devtools bool

// Trace is the default of rod.Browser.Trace, it also turns on the development logger of pom.Session
var Trace bool

// Slow is the default of rod.Browser.SlowMotion
var Slow time.Duration

// Monitor is the default of rod.Browser.ServeMonitor
var Monitor string

// Bin is the default of launcher.Launcher.Bin
var Bin string

// Remote is the control url of a running browser, when set no browser will be launched
var Remote string

// URL of the site under test
var URL string

// WS selects the websocket transport of the cdp client, "" for rod's own, "gorilla" for gorilla/websocket
var WS string

// Timeout is the default time a component waits to exist, to be enabled, etc.
var Timeout time.Duration

// Interval is the default pause between two checks of a wait
var Interval time.Duration

// DefaultURL of the site under test
const DefaultURL = "https://userinyerface.com/"

// Parse the flags
func init() {
	ResetWithEnv()
}

// Reset all flags to their init values.
func Reset() {
	Show = false
	Devtools = false
	Trace = false
	Slow = 0
	Monitor = ""
	Bin = ""
	Remote = ""
	URL = DefaultURL
	WS = ""
	Timeout = 10 * time.Second
	Interval = 50 * time.Millisecond
}

// ResetWithEnv all flags by the value of the pom env var.
func ResetWithEnv() {
	Reset()
	err := Parse(os.Getenv("pom"))
	if err != nil {
		panic(err)
	}
}

// Parse options and set them globally
func Parse(options string) error {
	if options == "" {
		return nil
	}

	for _, f := range strings.Split(options, ",") {
		kv := strings.SplitN(f, "=", 2)
		rule, has := rules[kv[0]]
		if !has {
			return fmt.Errorf("unknown pom option: %s", kv[0])
		}

		v := ""
		if len(kv) == 2 {
			v = kv[1]
		}

		err := rule(v)
		if err != nil {
			return fmt.Errorf("invalid pom option %s: %w", kv[0], err)
		}
	}
	return nil
}

func duration(v string, to *time.Duration) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("negative duration %s", v)
	}
	*to = d
	return nil
}

var rules = map[string]func(string) error{
	"show": func(string) error {
		Show = true
		return nil
	},
	"devtools": func(string) error {
		Devtools = true
		return nil
	},
	"trace": func(string) error {
		Trace = true
		return nil
	},
	"slow": func(v string) error {
		if v == "" {
			v = "1s"
		}
		return duration(v, &Slow)
	},
	"monitor": func(v string) error {
		Monitor = ":0"
		if v != "" {
			Monitor = v
		}
		return nil
	},
	"bin": func(v string) error {
		Bin = v
		return nil
	},
	"remote": func(v string) error {
		Remote = v
		return nil
	},
	"url": func(v string) error {
		URL = v
		return nil
	},
	"ws": func(v string) error {
		WS = v
		return nil
	},
	"timeout": func(v string) error {
		return duration(v, &Timeout)
	},
	"interval": func(v string) error {
		return duration(v, &Interval)
	},
}
