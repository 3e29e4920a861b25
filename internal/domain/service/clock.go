// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "time"

// Clock supplies the current wall-clock time. It is injected wherever the
// workflow stamps punches or does cooldown arithmetic so tests can run
// without real waits.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}
