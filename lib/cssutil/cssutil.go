// Package cssutil parses computed CSS values.
package cssutil

import (
	"fmt"
	"strings"
	"time"
)

// ParseDuration parses a computed CSS <time> value such as "2s", "0.3s" or "150ms".
// A comma separated list, which getComputedStyle returns for multiple transitions,
// yields the longest one.
func ParseDuration(value string) (time.Duration, error) {
	var max time.Duration
	found := false

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if !strings.HasSuffix(item, "s") {
			return 0, fmt.Errorf("invalid css time: %q", value)
		}

		d, err := time.ParseDuration(item)
		if err != nil {
			return 0, fmt.Errorf("invalid css time: %q", value)
		}
		if d < 0 {
			return 0, fmt.Errorf("negative css time: %q", value)
		}

		if !found || d > max {
			max = d
		}
		found = true
	}

	if !found {
		return 0, fmt.Errorf("empty css time: %q", value)
	}
	return max, nil
}
