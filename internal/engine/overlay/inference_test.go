package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/engine/overlay"
)

func TestInferBrand(t *testing.T) {
	t.Parallel()

	known := domain.NewBrandSet("acme", "globex")

	tests := []struct {
		name      string
		specifier string
		importer  string
		wantBrand string
		wantRule  string
	}{
		{
			name:      "request query beats importer query",
			specifier: "./Button?brand=acme",
			importer:  "/proj/src/App.tsx?__brand=globex",
			wantBrand: "acme",
			wantRule:  overlay.RuleRequestQuery,
		},
		{
			name:      "legacy key on request",
			specifier: "./Button?__brand=globex",
			wantBrand: "globex",
			wantRule:  overlay.RuleRequestQuery,
		},
		{
			name:      "unknown public key falls through to legacy key",
			specifier: "./Button?brand=ghost&__brand=globex",
			wantBrand: "globex",
			wantRule:  overlay.RuleRequestQuery,
		},
		{
			name:      "unknown request brand falls through to importer",
			specifier: "./Button?brand=ghost",
			importer:  "/proj/src/App.tsx?__brand=acme",
			wantBrand: "acme",
			wantRule:  overlay.RuleImporterQuery,
		},
		{
			name:      "importer query beats importer path",
			specifier: "./Button",
			importer:  "/proj/src/brands/acme/App.tsx?brand=globex",
			wantBrand: "globex",
			wantRule:  overlay.RuleImporterQuery,
		},
		{
			name:      "importer path",
			specifier: "./Button",
			importer:  "/proj/src/components/brands/acme/Header.tsx",
			wantBrand: "acme",
			wantRule:  overlay.RuleImporterPath,
		},
		{
			name:      "innermost brands segment wins",
			specifier: "./Button",
			importer:  "/proj/src/brands/globex/x/brands/acme/Header.tsx",
			wantBrand: "acme",
			wantRule:  overlay.RuleImporterPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			brand, rule, ok := overlay.InferBrand(domain.ModuleRequest{Specifier: tt.specifier, Importer: tt.importer}, known)
			assert.True(t, ok)
			assert.Equal(t, tt.wantBrand, brand)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestInferBrand_NoBrand(t *testing.T) {
	t.Parallel()

	known := domain.NewBrandSet("acme")

	for _, req := range []domain.ModuleRequest{
		{Specifier: "./Button"},
		{Specifier: "./Button", Importer: "/proj/src/App.tsx"},
		{Specifier: "./Button?brand=ghost", Importer: "/proj/src/App.tsx?__brand=ghost"},
		{Specifier: "./Button", Importer: "/proj/src/brands/ghost/App.tsx"},
		{Specifier: "./Button", Importer: "/proj/src/brands"},
		{Specifier: "./Button", Importer: "\x00brand-bridge:plain?base=%2Fproj%2Fsrc%2Fbrands%2Facme%2Fa.css"},
	} {
		_, _, ok := overlay.InferBrand(req, known)
		assert.False(t, ok, "%+v", req)
	}
}
