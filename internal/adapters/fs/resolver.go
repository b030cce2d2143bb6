package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

var _ ports.ModuleResolver = (*ModuleResolver)(nil)

// DefaultExtensions are probed, in order, for specifiers without a known file.
var DefaultExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".mjs", ".json"}

// ModuleResolver resolves relative, root-relative ("/src/...") and "/@fs/"
// specifiers against the project tree. Bare package specifiers and virtual
// ids are left to other resolvers.
type ModuleResolver struct {
	root       string
	extensions []string
}

// NewModuleResolver creates a resolver rooted at the absolute project root.
func NewModuleResolver(root string, extensions ...string) *ModuleResolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &ModuleResolver{
		root:       filepath.Clean(root),
		extensions: extensions,
	}
}

// Resolve resolves specifier relative to importer. The specifier's query is
// carried over to the resolved id unchanged.
func (r *ModuleResolver) Resolve(
	ctx context.Context,
	specifier, importer string,
	_ domain.ResolveOptions,
) (*domain.ResolvedModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if specifier == "" || domain.IsVirtual(specifier) {
		return nil, nil
	}

	p, query, _ := strings.Cut(specifier, "?")

	var candidate string
	switch {
	case strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") || p == "." || p == "..":
		candidate = filepath.Join(r.importerDir(importer), filepath.FromSlash(p))
	case strings.HasPrefix(p, "/"):
		candidate = r.ToFSPath(p)
	default:
		return nil, nil
	}

	found, ok := r.probe(candidate)
	if !ok {
		return nil, nil
	}
	id := found
	if query != "" {
		id += "?" + query
	}
	return &domain.ResolvedModule{ID: id}, nil
}

// ToFSPath converts a dev-server id into a filesystem path: "/@fs/abs" maps to
// "/abs", ids already under the root are kept, and other root-relative ids are
// joined onto the root. Queries are dropped.
func (r *ModuleResolver) ToFSPath(id string) string {
	p := domain.StripQuery(id)
	if rest, ok := strings.CutPrefix(p, domain.DevFSPrefix+"/"); ok {
		return filepath.Clean("/" + rest)
	}
	if p == r.root || strings.HasPrefix(p, r.root+string(filepath.Separator)) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}

// importerDir returns the directory relative specifiers are resolved against.
func (r *ModuleResolver) importerDir(importer string) string {
	if importer == "" || domain.IsVirtual(importer) {
		return r.root
	}
	return filepath.Dir(r.ToFSPath(importer))
}

// probe tries the path as given, then with each extension, then as a
// directory index.
func (r *ModuleResolver) probe(path string) (string, bool) {
	if isFile(path) {
		return path, true
	}
	for _, ext := range r.extensions {
		if isFile(path + ext) {
			return path + ext, true
		}
	}
	for _, ext := range r.extensions {
		index := filepath.Join(path, "index"+ext)
		if isFile(index) {
			return index, true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
