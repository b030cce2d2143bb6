package ports

// Cache names reported to Metrics.
const (
	CacheBrands = "brands"
	CachePaths  = "paths"
)

// Metrics records overlay engine counters.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheLookup records a cache hit or miss.
	CacheLookup(cache string, hit bool)
	// Invalidation records a wholesale cache invalidation.
	Invalidation()
	// Redirect records the outcome of a brand-governed resolution:
	// "overlay", "bridge", "base" or "passthrough".
	Redirect(kind string)
}
