// Package entries builds the per-brand build inputs for the client and
// server bundles.
package entries

import (
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
)

const bootstrapFile = "entry-client.ts"

// BuildClientEntries returns the client inputs: the default entry under
// "main" plus one "brand-<b>" input per brand, each pointing at the brand's
// bootstrap module.
func BuildClientEntries(cfg domain.Config, brands domain.BrandSet) domain.EntryMap {
	m := make(domain.EntryMap, brands.Len()+1)
	m[domain.DefaultClientEntryName] = cfg.ClientEntry
	for _, b := range brands.Sorted() {
		m[domain.ClientEntryName(b)] = cfg.BootstrapID(b)
	}
	return m
}

// BuildServerEntries returns the server inputs: the default server entry plus
// the same entry tagged with each brand.
func BuildServerEntries(cfg domain.Config, brands domain.BrandSet) domain.EntryMap {
	m := make(domain.EntryMap, brands.Len()+1)
	m[domain.DefaultServerEntryName] = cfg.ServerEntry
	for _, b := range brands.Sorted() {
		m[domain.ServerEntryName(b)] = domain.AppendQuery(cfg.ServerEntry, domain.QueryBrand, b)
	}
	return m
}

// Build returns the inputs for target. The map of a target that was not
// requested is left nil.
func Build(cfg domain.Config, brands domain.BrandSet, target domain.Target) domain.BuildInputs {
	var in domain.BuildInputs
	if target == domain.TargetClient || target == domain.TargetAll {
		in.Client = BuildClientEntries(cfg, brands)
	}
	if target == domain.TargetServer || target == domain.TargetAll {
		in.Server = BuildServerEntries(cfg, brands)
	}
	return in
}

// ParseBootstrapID returns the brand named by a bootstrap id produced by
// Config.BootstrapID. The brand is not checked against any registry.
func ParseBootstrapID(cfg domain.Config, id string) (string, bool) {
	rest, ok := strings.CutPrefix(domain.StripQuery(id), cfg.SourcePrefix()+"/__brand__/")
	if !ok {
		return "", false
	}
	brand, file, ok := strings.Cut(rest, "/")
	if !ok || brand == "" || file != bootstrapFile {
		return "", false
	}
	return brand, true
}

// BootstrapSource is the body of a brand's bootstrap module: it re-imports
// the default client entry tagged with the brand.
func BootstrapSource(cfg domain.Config, brand string) string {
	return "import '" + domain.AppendQuery(cfg.ClientEntry, domain.QueryBrand, brand) + "'\n"
}
