package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/brandlay/internal/adapters/cache"
	"go.trai.ch/brandlay/internal/adapters/fs"
	"go.trai.ch/brandlay/internal/adapters/metrics"
	"go.trai.ch/brandlay/internal/adapters/telemetry"
	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/engine/overlay"
)

const indexHTML = `<!doctype html>
<html>
  <head><script type="module" src="/src/entry-client.tsx"></script></head>
  <body><script type="module" src="/src/entry-client.tsx"></script></body>
</html>
`

func TestTransformIndexHTML(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src/entry-client.tsx", "src/brands/acme/logo.svg")

	tagged := `<!doctype html>
<html>
  <head><script type="module" src="/src/entry-client.tsx?brand=acme"></script></head>
  <body><script type="module" src="/src/entry-client.tsx"></script></body>
</html>
`

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"path with brand", "/checkout?brand=acme", tagged},
		{"absolute url with brand", "http://shop.example.com/?brand=acme", tagged},
		{"unknown brand", "/?brand=ghost", indexHTML},
		{"legacy key is not a request brand", "/?__brand=acme", indexHTML},
		{"no brand", "/checkout", indexHTML},
		{"malformed url", "/%zz?brand=acme", indexHTML},
		{"empty url", "", indexHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, f.engine.TransformIndexHTML(indexHTML, tt.url))
		})
	}
}

func TestTransformIndexHTML_OtherScripts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src/brands/acme/logo.svg")

	html := `<script type="module" src="/src/entry-client.tsx.map"></script><script src="/src/entry-client.tsx"></script>`
	assert.Equal(t, html, f.engine.TransformIndexHTML(html, "/?brand=acme"))
}

func TestTransformIndexHTML_BuildMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "src/brands/acme/logo.svg")

	cfg := domain.DefaultConfig()
	cfg.Root = root
	cfg.Mode = domain.ModeBuild

	session := cache.NewSession(fs.NewScanner(), fs.NewChecker(), metrics.Nop{})
	e := overlay.New(cfg, session, fs.NewModuleResolver(root), nil, quietLogger(t), telemetry.NewNoOpTracer(), metrics.Nop{})

	assert.Equal(t, indexHTML, e.TransformIndexHTML(indexHTML, "/?brand=acme"))
}
