// Package frontier serves the virtual:frontier module, which maps every
// declared entrypoint to a lazy loader.
package frontier

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

const (
	// ID is the specifier applications import.
	ID = domain.VirtualNamespace + "frontier"
	// ResolvedID is the id ID resolves to.
	ResolvedID = domain.VirtualPrefix + ID
)

// PathWatcher registers files whose changes should reach the host's watch
// stream.
type PathWatcher interface {
	Add(path string) error
}

// Module resolves and loads virtual:frontier.
type Module struct {
	cfg    domain.Config
	loader ports.EntrypointLoader
	log    ports.Logger

	mu      sync.Mutex
	watcher PathWatcher
	watched bool
}

// New creates a Module reading the entrypoint list named by cfg.
func New(cfg domain.Config, loader ports.EntrypointLoader, log ports.Logger) *Module {
	return &Module{cfg: cfg, loader: loader, log: log}
}

// SetWatcher makes the module register the entrypoint list with w the next
// time it is loaded.
func (m *Module) SetWatcher(w PathWatcher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watcher = w
	m.watched = false
}

// ConfigPath returns the absolute path of the entrypoint list.
func (m *Module) ConfigPath() string {
	if filepath.IsAbs(m.cfg.FrontierConfig) {
		return m.cfg.FrontierConfig
	}
	return filepath.Join(m.cfg.Root, m.cfg.FrontierConfig)
}

// Resolve claims "virtual:frontier" and "virtual:frontier?<query>".
func (m *Module) Resolve(specifier string) (string, bool) {
	if specifier == ID || strings.HasPrefix(specifier, ID+"?") {
		return domain.VirtualPrefix + specifier, true
	}
	return "", false
}

// Owns reports whether id was produced by Resolve.
func (m *Module) Owns(id string) bool {
	return domain.StripQuery(id) == ResolvedID
}

// Load returns the module body for id. A brand on the id that is not in
// brands is ignored, so the module falls back to its unbranded form.
func (m *Module) Load(_ context.Context, id string, brands domain.BrandSet) (string, error) {
	m.watchConfig()

	ep, err := m.loader.Load(m.ConfigPath())
	if err != nil {
		return "", err
	}

	brand := domain.ParseAnnotations(id).Brand
	if brand != "" && !brands.Has(brand) {
		m.log.Debug("ignoring unknown brand on frontier module", "brand", brand)
		brand = ""
	}
	return Generate(Paths(ep, m.cfg.SourcePrefix()), brand, brands), nil
}

func (m *Module) watchConfig() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watcher == nil || m.watched {
		return
	}
	path := m.ConfigPath()
	if err := m.watcher.Add(path); err != nil {
		m.log.Debug("entrypoint list not watched", "path", path, "error", err.Error())
		return
	}
	m.watched = true
}

// Paths returns the normalized entrypoint ids.
func Paths(ep domain.Entrypoints, srcPrefix string) []string {
	out := make([]string, 0, len(ep.Paths))
	for _, raw := range ep.Paths {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		out = append(out, domain.NormalizeEntrypoint(raw, srcPrefix))
	}
	return out
}

// Generate renders the componentLoaders module. With a brand only that
// brand's loaders are emitted; without one every entrypoint is emitted
// untagged and once per brand.
func Generate(paths []string, brand string, brands domain.BrandSet) string {
	var keys []string
	for _, p := range paths {
		if brand != "" {
			keys = append(keys, domain.AppendQuery(p, domain.QueryBrand, brand))
			continue
		}
		keys = append(keys, p)
		for _, b := range brands.Sorted() {
			keys = append(keys, domain.AppendQuery(p, domain.QueryBrand, b))
		}
	}

	var sb strings.Builder
	sb.WriteString("export const componentLoaders = {\n")
	for i, key := range keys {
		lit := domain.JSString(key)
		sb.WriteString("  " + lit + ": () => import(" + lit + ")")
		if i < len(keys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Route pairs an entrypoint with the URL segment that serves it.
type Route struct {
	Segment string
	Path    string
}

// Routes returns the route of every declared entrypoint, in declaration order.
func Routes(ep domain.Entrypoints, srcPrefix string) []Route {
	paths := Paths(ep, srcPrefix)
	out := make([]Route, 0, len(paths))
	for _, p := range paths {
		out = append(out, Route{Segment: domain.RouteSegment(p, srcPrefix), Path: p})
	}
	return out
}

// Lookup returns the route serving rawURL. URLs that match no declared
// entrypoint, or do not parse, are served by defaultEntry under "main".
func Lookup(routes []Route, rawURL, defaultEntry string) Route {
	if r, ok := Match(routes, rawURL); ok {
		return r
	}
	return Route{Segment: domain.DefaultClientEntryName, Path: defaultEntry}
}

// Match returns the route whose segment equals the first path segment of
// rawURL. Unparseable URLs match nothing.
func Match(routes []Route, rawURL string) (Route, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Route{}, false
	}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" {
			continue
		}
		for _, r := range routes {
			if r.Segment == seg {
				return r, true
			}
		}
		return Route{}, false
	}
	return Route{}, false
}
