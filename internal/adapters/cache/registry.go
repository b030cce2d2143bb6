// Package cache holds the brand registry and path-existence caches of a build session.
package cache

import (
	"sync"
	"unique"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

// Registry memoizes brand discovery per source root.
type Registry struct {
	mu      sync.Mutex
	entries map[unique.Handle[string]]domain.BrandSet
	scanner ports.BrandScanner
	metrics ports.Metrics
}

// NewRegistry creates a Registry that scans with scanner on a miss.
func NewRegistry(scanner ports.BrandScanner, metrics ports.Metrics) *Registry {
	return &Registry{
		entries: make(map[unique.Handle[string]]domain.BrandSet),
		scanner: scanner,
		metrics: metrics,
	}
}

// Brands returns the brands under sourceRoot. The returned set is always a
// copy, so callers may modify it freely.
func (r *Registry) Brands(sourceRoot string) domain.BrandSet {
	key := unique.Make(sourceRoot)

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.entries[key]; ok {
		r.metrics.CacheLookup(ports.CacheBrands, true)
		return cached.Clone()
	}
	r.metrics.CacheLookup(ports.CacheBrands, false)

	scanned := r.scanner.Scan(sourceRoot)
	if scanned == nil {
		scanned = domain.NewBrandSet()
	}
	r.entries[key] = scanned.Clone()
	return scanned
}
