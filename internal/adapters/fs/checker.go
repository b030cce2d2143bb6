package fs

import (
	"os"

	"go.trai.ch/brandlay/internal/core/ports"
)

var _ ports.PathChecker = (*Checker)(nil)

// Checker answers existence questions with a single stat call.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Exists reports whether path exists. Any stat failure counts as absent.
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
