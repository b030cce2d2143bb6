package metrics

import "go.trai.ch/brandlay/internal/core/ports"

var _ ports.Metrics = Nop{}

// Nop discards every measurement.
type Nop struct{}

// CacheLookup does nothing.
func (Nop) CacheLookup(string, bool) {}

// Invalidation does nothing.
func (Nop) Invalidation() {}

// Redirect does nothing.
func (Nop) Redirect(string) {}
