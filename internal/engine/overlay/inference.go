package overlay

import (
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
)

// Inference rule names, reported in logs and spans.
const (
	RuleRequestQuery  = "request-query"
	RuleImporterQuery = "importer-query"
	RuleImporterPath  = "importer-path"
)

type inferenceRule struct {
	name       string
	candidates func(req domain.ModuleRequest) []string
}

// rules are evaluated in order; the first known candidate wins.
var rules = []inferenceRule{
	{
		name: RuleRequestQuery,
		candidates: func(req domain.ModuleRequest) []string {
			return domain.ParseAnnotations(req.Specifier).Candidates()
		},
	},
	{
		name: RuleImporterQuery,
		candidates: func(req domain.ModuleRequest) []string {
			if req.Importer == "" {
				return nil
			}
			return domain.ParseAnnotations(req.Importer).Candidates()
		},
	},
	{
		name: RuleImporterPath,
		candidates: func(req domain.ModuleRequest) []string {
			if req.Importer == "" || domain.IsVirtual(req.Importer) {
				return nil
			}
			return brandsInPath(domain.StripQuery(req.Importer))
		},
	},
}

// InferBrand returns the brand governing req and the rule that matched.
// Candidates that are not in known are skipped, so an unknown brand never
// governs a resolution.
func InferBrand(req domain.ModuleRequest, known domain.BrandSet) (brand, rule string, ok bool) {
	for _, r := range rules {
		for _, candidate := range r.candidates(req) {
			if known.Has(candidate) {
				return candidate, r.name, true
			}
		}
	}
	return "", "", false
}

// brandsInPath returns the names following every "/brands/" segment of p,
// innermost first.
func brandsInPath(p string) []string {
	segments := strings.Split(strings.ReplaceAll(p, `\`, "/"), "/")
	var out []string
	// The last segment is the file name and cannot name a brand directory.
	for i := len(segments) - 3; i >= 0; i-- {
		if segments[i] == domain.BrandsDir && segments[i+1] != "" {
			out = append(out, segments[i+1])
		}
	}
	return out
}
