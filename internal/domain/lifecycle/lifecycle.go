// Package lifecycle holds shared start/stop timing.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds start-up pings and graceful shutdown steps.
	DefaultTimeout = 10 * time.Second
	// ShutdownTimeout bounds HTTP server draining.
	ShutdownTimeout = 15 * time.Second
)
