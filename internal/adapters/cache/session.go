package cache

import (
	"sync/atomic"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

var (
	_ ports.CacheSession = (*Session)(nil)
	_ ports.CacheView    = (*Generation)(nil)
)

// Generation is one consistent pair of caches. A request that holds a
// Generation sees the registry and the existence cache from the same epoch.
type Generation struct {
	Seq      uint64
	Registry *Registry
	Paths    *ExistenceCache
}

// Brands returns the brands under sourceRoot.
func (g *Generation) Brands(sourceRoot string) domain.BrandSet {
	return g.Registry.Brands(sourceRoot)
}

// Exists reports whether path exists.
func (g *Generation) Exists(path string) bool {
	return g.Paths.Exists(path)
}

// Session owns the caches of one build session. Invalidation publishes a
// fresh Generation instead of clearing maps in place, so in-flight requests
// keep reading the generation they started with.
type Session struct {
	scanner ports.BrandScanner
	checker ports.PathChecker
	metrics ports.Metrics
	seq     atomic.Uint64
	current atomic.Pointer[Generation]
}

// NewSession creates a Session with an empty first generation.
func NewSession(scanner ports.BrandScanner, checker ports.PathChecker, metrics ports.Metrics) *Session {
	s := &Session{
		scanner: scanner,
		checker: checker,
		metrics: metrics,
	}
	s.current.Store(s.newGeneration())
	return s
}

// Snapshot returns the current generation. Callers take it once per request.
func (s *Session) Snapshot() ports.CacheView {
	return s.Current()
}

// Current returns the current generation with its concrete type.
func (s *Session) Current() *Generation {
	return s.current.Load()
}

// Invalidate replaces both caches at once.
func (s *Session) Invalidate() {
	s.current.Store(s.newGeneration())
	s.metrics.Invalidation()
}

func (s *Session) newGeneration() *Generation {
	return &Generation{
		Seq:      s.seq.Add(1),
		Registry: NewRegistry(s.scanner, s.metrics),
		Paths:    NewExistenceCache(s.checker, s.metrics),
	}
}
