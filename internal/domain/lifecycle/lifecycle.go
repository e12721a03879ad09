// Package lifecycle holds shared constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may block.
const DefaultTimeout = 10 * time.Second
