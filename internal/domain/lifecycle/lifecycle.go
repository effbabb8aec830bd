// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, such as pinging the
// database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
