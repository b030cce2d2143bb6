package frontier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports/mocks"
	"go.trai.ch/brandlay/internal/engine/frontier"
)

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Root = "/proj"
	return cfg
}

var declared = domain.Entrypoints{
	Name:  "storefront",
	Paths: []string{"entries/checkout/App.tsx", "src/entries/account/App.tsx", "  "},
}

func TestModule_Resolve(t *testing.T) {
	t.Parallel()

	m := frontier.New(testConfig(), nil, nil)

	id, ok := m.Resolve("virtual:frontier")
	require.True(t, ok)
	assert.Equal(t, "\x00virtual:frontier", id)
	assert.True(t, m.Owns(id))

	id, ok = m.Resolve("virtual:frontier?brand=acme")
	require.True(t, ok)
	assert.Equal(t, "\x00virtual:frontier?brand=acme", id)
	assert.True(t, m.Owns(id))

	_, ok = m.Resolve("virtual:frontiers")
	assert.False(t, ok)
	assert.False(t, m.Owns("virtual:frontier"))
}

func TestModule_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     string
		golden string
	}{
		{"unbranded lists every brand", "\x00virtual:frontier", "frontier_unbranded"},
		{"branded lists one brand", "\x00virtual:frontier?brand=acme", "frontier_branded"},
		{"unknown brand falls back", "\x00virtual:frontier?brand=ghost", "frontier_unbranded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			loader := mocks.NewMockEntrypointLoader(ctrl)
			loader.EXPECT().Load("/proj/frontier.config.yaml").Return(declared, nil)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

			m := frontier.New(testConfig(), loader, log)
			body, err := m.Load(context.Background(), tt.id, domain.NewBrandSet("acme", "globex"))
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.golden, []byte(body))
		})
	}
}

func TestModule_Load_WatchesConfigOnce(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockEntrypointLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Entrypoints{}, nil).Times(2)
	watcher := mocks.NewMockWatcher(ctrl)
	watcher.EXPECT().Add("/proj/frontier.config.yaml").Return(nil).Times(1)

	m := frontier.New(testConfig(), loader, mocks.NewMockLogger(ctrl))
	m.SetWatcher(watcher)

	for range 2 {
		body, err := m.Load(context.Background(), frontier.ResolvedID, domain.NewBrandSet())
		require.NoError(t, err)
		assert.Equal(t, "export const componentLoaders = {\n}\n", body)
	}
}

func TestModule_Load_LoaderError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockEntrypointLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Entrypoints{}, errors.New("boom"))

	m := frontier.New(testConfig(), loader, mocks.NewMockLogger(ctrl))
	_, err := m.Load(context.Background(), frontier.ResolvedID, domain.NewBrandSet())
	require.EqualError(t, err, "boom")
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	ep := domain.Entrypoints{Paths: []string{
		"entries/checkout/App.tsx",
		"/src/landing/Page.tsx",
		"src/entries/account/App.tsx",
	}}
	routes := frontier.Routes(ep, "/src")

	assert.Equal(t, []frontier.Route{
		{Segment: "checkout", Path: "/src/entries/checkout/App.tsx"},
		{Segment: "landing", Path: "/src/landing/Page.tsx"},
		{Segment: "account", Path: "/src/entries/account/App.tsx"},
	}, routes)

	r, ok := frontier.Match(routes, "/account/settings?brand=acme")
	require.True(t, ok)
	assert.Equal(t, "/src/entries/account/App.tsx", r.Path)

	_, ok = frontier.Match(routes, "/")
	assert.False(t, ok)
	_, ok = frontier.Match(routes, "/unknown/checkout")
	assert.False(t, ok)
	_, ok = frontier.Match(routes, "http://[::1")
	assert.False(t, ok)
}

func TestLookup_FallsBackToMain(t *testing.T) {
	t.Parallel()

	routes := []frontier.Route{{Segment: "checkout", Path: "/src/entries/checkout/App.tsx"}}

	assert.Equal(t, routes[0], frontier.Lookup(routes, "/checkout/step-1", "/src/entry-client.tsx"))

	main := frontier.Route{Segment: "main", Path: "/src/entry-client.tsx"}
	assert.Equal(t, main, frontier.Lookup(routes, "/account", "/src/entry-client.tsx"))
	assert.Equal(t, main, frontier.Lookup(routes, "/", "/src/entry-client.tsx"))
	assert.Equal(t, main, frontier.Lookup(nil, "http://[::1", "/src/entry-client.tsx"))
}

func TestGenerate_QuotesSpecialCharacters(t *testing.T) {
	t.Parallel()

	body := frontier.Generate([]string{`/src/it's.tsx`}, "", domain.NewBrandSet())
	assert.Equal(t, "export const componentLoaders = {\n  '/src/it\\'s.tsx': () => import('/src/it\\'s.tsx')\n}\n", body)
}
