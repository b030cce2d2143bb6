// Package fs provides file system adapters for brand discovery and module resolution.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

var _ ports.BrandScanner = (*Scanner)(nil)

// Scanner discovers brands by walking a source tree breadth first.
type Scanner struct {
	skip map[string]bool
}

// NewScanner creates a Scanner that never descends into the named directories.
// Directories starting with a dot are always skipped.
func NewScanner(skipDirs ...string) *Scanner {
	if len(skipDirs) == 0 {
		skipDirs = []string{"node_modules"}
	}
	skip := make(map[string]bool, len(skipDirs))
	for _, name := range skipDirs {
		skip[name] = true
	}
	return &Scanner{skip: skip}
}

// Scan returns the names of the immediate subdirectories of every directory
// called "brands" under sourceRoot. Brand subtrees are not descended into, and
// a directory that cannot be read is skipped along with its subtree.
func (s *Scanner) Scan(sourceRoot string) domain.BrandSet {
	brands := domain.NewBrandSet()
	queue := []string{sourceRoot}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(current)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() || s.shouldSkip(entry.Name()) {
				continue
			}
			full := filepath.Join(current, entry.Name())
			if entry.Name() == domain.BrandsDir {
				s.collectBrands(full, brands)
				continue
			}
			queue = append(queue, full)
		}
	}

	return brands
}

// collectBrands adds every subdirectory of a brands directory.
func (s *Scanner) collectBrands(dir string, brands domain.BrandSet) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			brands.Add(entry.Name())
		}
	}
}

// shouldSkip checks if a directory should be skipped by name.
func (s *Scanner) shouldSkip(name string) bool {
	return strings.HasPrefix(name, ".") || s.skip[name]
}
