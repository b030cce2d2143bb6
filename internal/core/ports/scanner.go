package ports

import "go.trai.ch/brandlay/internal/core/domain"

// BrandScanner discovers brand identifiers under a source root.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type BrandScanner interface {
	// Scan returns every brand found under sourceRoot. It never fails:
	// unreadable subtrees are skipped.
	Scan(sourceRoot string) domain.BrandSet
}

// PathChecker answers filesystem existence questions.
type PathChecker interface {
	// Exists reports whether path names an existing file or directory.
	Exists(path string) bool
}

// CacheView is one consistent generation of the brand registry and the
// path-existence cache. A request reads a single view from start to finish.
type CacheView interface {
	// Brands returns a copy of the brands under sourceRoot.
	Brands(sourceRoot string) domain.BrandSet
	// Exists reports whether path exists, memoized for the view's lifetime.
	Exists(path string) bool
}

// CacheSession hands out cache views and invalidates them.
type CacheSession interface {
	// Snapshot returns the current view.
	Snapshot() CacheView
	// Invalidate drops both caches together. Views taken afterwards see the
	// filesystem as it is now.
	Invalidate()
}
