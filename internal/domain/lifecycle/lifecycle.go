// Package lifecycle holds shared constants for fx lifecycle management.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps (server shutdown,
// database ping) so the fx lifecycle never hangs.
const DefaultTimeout = 10 * time.Second
