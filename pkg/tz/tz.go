package tz

import (
	"fmt"
	"time"
)

// Display is the location event times are rendered in. It defaults to UTC
// until Load is called.
var Display = time.UTC

// Load sets Display from an IANA zone name such as "America/New_York".
func Load(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("tz: load %s: %w", name, err)
	}
	Display = loc
	return nil
}
