// Package lifecycle holds shared settings for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as the database ping and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
