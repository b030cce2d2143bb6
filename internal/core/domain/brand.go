package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// BrandSet is the set of brand identifiers discovered under one source root.
// Brand identifiers compare by exact string match.
type BrandSet map[string]struct{}

// NewBrandSet creates a BrandSet holding the given names.
func NewBrandSet(names ...string) BrandSet {
	s := make(BrandSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a brand. Empty names are ignored.
func (s BrandSet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether the set contains the brand. It is safe on a nil set.
func (s BrandSet) Has(name string) bool {
	if name == "" {
		return false
	}
	_, ok := s[name]
	return ok
}

// Len returns the number of brands.
func (s BrandSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s BrandSet) Clone() BrandSet {
	c := make(BrandSet, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Sorted returns the brand names in lexical order.
func (s BrandSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fingerprint returns a stable hash of the set contents.
// Two sets with the same members always share a fingerprint.
func (s BrandSet) Fingerprint() string {
	h := xxhash.New()
	for _, name := range s.Sorted() {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Diff reports which brands are in next but not in s (added) and which are in s
// but not in next (removed). Both slices are sorted.
func (s BrandSet) Diff(next BrandSet) (added, removed []string) {
	for _, name := range next.Sorted() {
		if !s.Has(name) {
			added = append(added, name)
		}
	}
	for _, name := range s.Sorted() {
		if !next.Has(name) {
			removed = append(removed, name)
		}
	}
	return added, removed
}
