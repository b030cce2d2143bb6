package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/brandlay/internal/adapters/fs"
	"go.trai.ch/brandlay/internal/core/domain"
)

func TestModuleResolver_Resolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	button := writeFile(t, root, "src/components/Button.tsx", "export {}")
	styles := writeFile(t, root, "src/components/Button.module.css", ".btn{}")
	index := writeFile(t, root, "src/lib/index.ts", "export {}")
	app := writeFile(t, root, "src/App.tsx", "export {}")

	resolver := fs.NewModuleResolver(root)

	tests := []struct {
		name      string
		specifier string
		importer  string
		want      string
	}{
		{"relative with extension probe", "./components/Button", app, button},
		{"relative exact file", "./Button.module.css", button, styles},
		{"parent relative", "../App", button, app},
		{"directory index", "./lib", app, index},
		{"root relative", "/src/components/Button.tsx", "", button},
		{"dev fs prefix", domain.DevFSPrefix + button, "", button},
		{"absolute under root", button, "", button},
		{"query is preserved", "./components/Button?brand=acme", app, button + "?brand=acme"},
		{"importer with query", "./Button.module.css", button + "?__brand=acme", styles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.Resolve(context.Background(), tt.specifier, tt.importer, domain.ResolveOptions{})
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestModuleResolver_Resolve_None(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	app := writeFile(t, root, "src/App.tsx", "export {}")
	resolver := fs.NewModuleResolver(root)

	for _, specifier := range []string{
		"react",
		"virtual:frontier",
		domain.VirtualPrefix + "virtual:frontier",
		"./Missing",
		"",
	} {
		got, err := resolver.Resolve(context.Background(), specifier, app, domain.ResolveOptions{})
		require.NoError(t, err, specifier)
		assert.Nil(t, got, specifier)
	}
}

func TestModuleResolver_Resolve_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewModuleResolver(t.TempDir()).Resolve(ctx, "./a", "", domain.ResolveOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestModuleResolver_ToFSPath(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "proj")
	resolver := fs.NewModuleResolver(root)

	assert.Equal(t, "/proj/src/a.ts", resolver.ToFSPath("/src/a.ts?brand=x"))
	assert.Equal(t, "/proj/src/a.ts", resolver.ToFSPath("/@fs/proj/src/a.ts"))
	assert.Equal(t, "/proj/src/a.ts", resolver.ToFSPath("/proj/src/a.ts"))
}
