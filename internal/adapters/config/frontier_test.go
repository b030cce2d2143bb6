package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/brandlay/internal/adapters/config"
	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports/mocks"
)

func newFrontierLoader(t *testing.T) *config.FrontierLoader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewFrontierLoader(log)
}

func TestFrontierLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), domain.DefaultFrontierConfig, `
name: storefront
entrypoints:
  - entries/checkout/App.tsx
  - src/entries/account/App.tsx
`)

	got, err := newFrontierLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Entrypoints{
		Name:  "storefront",
		Paths: []string{"entries/checkout/App.tsx", "src/entries/account/App.tsx"},
	}, got)
}

func TestFrontierLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader := newFrontierLoader(t)

	missing, err := loader.Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "default", missing.Name)
	assert.Empty(t, missing.Paths)

	noList, err := loader.Load(writeConfig(t, dir, "empty.yaml", "name: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "x", noList.Name)
	assert.Empty(t, noList.Paths)
}

func TestFrontierLoader_Load_ParseError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), domain.DefaultFrontierConfig, "entrypoints: {not: [a list")

	_, err := newFrontierLoader(t).Load(path)
	require.ErrorContains(t, err, domain.ErrEntrypointsParseFailed.Error())
}
