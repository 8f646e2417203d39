// Package lifecycle holds shared timings for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds slow startup and shutdown steps.
const DefaultTimeout = 15 * time.Second
