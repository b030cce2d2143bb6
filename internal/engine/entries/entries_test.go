package entries_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/engine/entries"
)

func TestBuildClientEntries(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	got := entries.BuildClientEntries(cfg, domain.NewBrandSet("red", "blue"))

	assert.Equal(t, domain.EntryMap{
		"main":       "/src/entry-client.tsx",
		"brand-blue": "/src/__brand__/blue/entry-client.ts",
		"brand-red":  "/src/__brand__/red/entry-client.ts",
	}, got)

	// Each brand entry loads the default entry tagged with its brand.
	for _, b := range []string{"red", "blue"} {
		brand, ok := entries.ParseBootstrapID(cfg, got[domain.ClientEntryName(b)])
		require.True(t, ok)
		assert.Equal(t, b, brand)
		assert.Equal(t, "import '/src/entry-client.tsx?brand="+b+"'\n", entries.BootstrapSource(cfg, brand))
	}
}

func TestBuildClientEntries_NoBrands(t *testing.T) {
	t.Parallel()

	got := entries.BuildClientEntries(domain.DefaultConfig(), domain.NewBrandSet())
	assert.Equal(t, domain.EntryMap{"main": "/src/entry-client.tsx"}, got)
}

func TestBuildServerEntries(t *testing.T) {
	t.Parallel()

	got := entries.BuildServerEntries(domain.DefaultConfig(), domain.NewBrandSet("red", "blue"))

	assert.Equal(t, domain.EntryMap{
		"entry-server":      "/src/entry-server.tsx",
		"entry-server-blue": "/src/entry-server.tsx?brand=blue",
		"entry-server-red":  "/src/entry-server.tsx?brand=red",
	}, got)
}

func TestBuild_Targets(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	brands := domain.NewBrandSet("acme")

	client := entries.Build(cfg, brands, domain.TargetClient)
	assert.NotNil(t, client.Client)
	assert.Nil(t, client.Server)

	server := entries.Build(cfg, brands, domain.TargetServer)
	assert.Nil(t, server.Client)
	assert.NotNil(t, server.Server)

	all := entries.Build(cfg, brands, domain.TargetAll)
	out, err := yaml.Marshal(all)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "build_inputs_all", out)
}

func TestParseBootstrapID(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()

	tests := []struct {
		id    string
		brand string
		ok    bool
	}{
		{"/src/__brand__/acme/entry-client.ts", "acme", true},
		{"/src/__brand__/acme/entry-client.ts?v=1", "acme", true},
		{"/src/__brand__//entry-client.ts", "", false},
		{"/src/__brand__/acme/other.ts", "", false},
		{"/src/__brand__/acme/nested/entry-client.ts", "", false},
		{"/src/entry-client.tsx", "", false},
	}

	for _, tt := range tests {
		brand, ok := entries.ParseBootstrapID(cfg, tt.id)
		assert.Equal(t, tt.ok, ok, tt.id)
		assert.Equal(t, tt.brand, brand, tt.id)
	}
}
