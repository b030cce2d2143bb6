package overlay

import (
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

// ShouldInvalidate reports whether ev can change the brand set or the
// existence of an overlay file: the path must lie below srcRoot and contain
// a brands segment (or be a brands directory itself).
func ShouldInvalidate(ev ports.WatchEvent, srcRoot string) bool {
	p := filepath.ToSlash(filepath.Clean(ev.Path))
	root := filepath.ToSlash(filepath.Clean(srcRoot))
	if !strings.HasPrefix(p, root+"/") {
		return false
	}
	seg := "/" + domain.BrandsDir
	return strings.Contains(p, seg+"/") || strings.HasSuffix(p, seg)
}

// Invalidator drops the session caches when overlay trees change and
// rescans immediately, so the next resolution sees the new state.
type Invalidator struct {
	caches  ports.CacheSession
	srcRoot string
	log     ports.Logger

	mu    sync.Mutex
	known domain.BrandSet
}

// NewInvalidator creates an Invalidator for the source tree at srcRoot.
func NewInvalidator(caches ports.CacheSession, srcRoot string, log ports.Logger) *Invalidator {
	return &Invalidator{caches: caches, srcRoot: srcRoot, log: log}
}

// Prime records brands as the last known set.
func (i *Invalidator) Prime(brands domain.BrandSet) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.known = brands.Clone()
}

// Handle reacts to a single watch event. It reports whether the caches were
// invalidated.
func (i *Invalidator) Handle(ev ports.WatchEvent) bool {
	if !ShouldInvalidate(ev, i.srcRoot) {
		return false
	}

	i.caches.Invalidate()
	brands := i.caches.Snapshot().Brands(i.srcRoot)

	i.mu.Lock()
	added, removed := i.known.Diff(brands)
	i.known = brands
	i.mu.Unlock()

	i.log.Debug("overlay caches invalidated", "op", ev.Operation.String(), "path", ev.Path)
	if len(added) > 0 || len(removed) > 0 {
		i.log.Info("brands changed",
			"added", strings.Join(added, ","),
			"removed", strings.Join(removed, ","),
			"brands", brands.Fingerprint(),
		)
	}
	return true
}
