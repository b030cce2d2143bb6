package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Fixed entry names for the default (unbranded) build inputs.
const (
	DefaultClientEntryName = "main"
	DefaultServerEntryName = "entry-server"
)

// ClientEntryName returns the client build input name for a brand.
func ClientEntryName(brand string) string {
	return "brand-" + brand
}

// ServerEntryName returns the server build input name for a brand.
func ServerEntryName(brand string) string {
	return DefaultServerEntryName + "-" + brand
}

// EntryMap maps build input names to entry specifiers for one build target.
type EntryMap map[string]string

// Names returns the entry names in lexical order.
func (m EntryMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// BuildInputs holds the entry maps for both build targets.
type BuildInputs struct {
	Client EntryMap `yaml:"client"`
	Server EntryMap `yaml:"server"`
}

// Target selects which build graph an operation applies to.
type Target string

const (
	TargetClient Target = "client"
	TargetServer Target = "server"
	TargetAll    Target = "all"
)

// ParseTarget validates a target name.
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetClient, TargetServer, TargetAll:
		return t, nil
	default:
		return "", zerr.With(ErrUnknownTarget, "target", s)
	}
}
