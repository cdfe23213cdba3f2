// Package lifecycle holds shared constants for service startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 30 * time.Second
