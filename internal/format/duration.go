// Package format holds small, dependency-free formatting helpers shared by
// the presentation layer.
package format

import (
	"fmt"
	"time"
)

// Duration formats an elapsed time for display: microseconds below one
// millisecond, milliseconds below one second, and time.Duration's own form
// rounded to the millisecond otherwise.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
