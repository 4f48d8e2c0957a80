// Package testdata holds the inputs and the expected values of the game scenarios.
//
// The embedded data.json is the default set. Single values can be overridden
// with "path=value" pairs, for example from the env var "pom_data":
//
//    pom_data="url=http://127.0.0.1:8080/;timeout=2000"
//
package testdata

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

//go:embed data.json
var defaultJSON []byte

// Data of the scenarios
type Data struct {
	URL     string
	Timeout time.Duration

	PasswordLength  int
	EmailLength     int
	DomainLength    int
	InterestsAmount int

	UploadErrorText    string
	InterestsErrorText string

	ColorStyle    string
	GreenColorRGB string

	HiddenAttribute      string
	HideDurationStyle    string
	HeightStyle          string
	HeightValueAfterHide string

	TimerStartValue string
}

// Default data set with the overrides from the env var "pom_data"
func Default() (*Data, error) {
	return Load(defaultJSON, Overrides(os.Getenv("pom_data"))...)
}

// Overrides splits a ";" separated list of "path=value" pairs
func Overrides(list string) []string {
	out := []string{}
	for _, item := range strings.Split(list, ";") {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

// Load the data from json, then apply the overrides in order.
// An override keeps the json type of the value it replaces.
func Load(raw []byte, overrides ...string) (*Data, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("testdata: invalid json")
	}

	for _, o := range overrides {
		kv := strings.SplitN(o, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("testdata: invalid override %q, expect path=value", o)
		}

		var err error
		raw, err = set(raw, strings.TrimSpace(kv[0]), kv[1])
		if err != nil {
			return nil, err
		}
	}

	return parse(gjson.ParseBytes(raw))
}

func set(raw []byte, path, value string) ([]byte, error) {
	if gjson.GetBytes(raw, path).Type == gjson.Number {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("testdata: %s expects a number: %w", path, err)
		}
		return sjson.SetBytes(raw, path, n)
	}
	return sjson.SetBytes(raw, path, value)
}

func parse(j gjson.Result) (*Data, error) {
	missing := []string{}

	str := func(path string) string {
		v := j.Get(path)
		if !v.Exists() {
			missing = append(missing, path)
		}
		return v.String()
	}
	num := func(path string) int64 {
		v := j.Get(path)
		if v.Type != gjson.Number {
			missing = append(missing, path)
		}
		return v.Int()
	}

	d := &Data{
		URL:     str("url"),
		Timeout: time.Duration(num("timeout")) * time.Millisecond,

		PasswordLength:  int(num("passwordLength")),
		EmailLength:     int(num("emailLength")),
		DomainLength:    int(num("domainLength")),
		InterestsAmount: int(num("interestsAmount")),

		UploadErrorText:    str("uploadErrorText"),
		InterestsErrorText: str("interestsErrorText"),

		ColorStyle:    str("colorStyle"),
		GreenColorRGB: str("greenColorRGB"),

		HiddenAttribute:      str("hiddenAttribute"),
		HideDurationStyle:    str("hideDurationStyle"),
		HeightStyle:          str("heightStyle"),
		HeightValueAfterHide: str("heightValueAfterHide"),

		TimerStartValue: str("timerStartValue"),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("testdata: missing or mistyped keys: %s", strings.Join(missing, ", "))
	}
	return d, nil
}
