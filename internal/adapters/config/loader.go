// Package config provides the configuration loaders for brandlay.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration at path. A missing file yields the defaults
// rooted at the file's directory. The returned root is always absolute.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	base := filepath.Dir(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Logger.Debug("no config file, using defaults", "path", path)
	case err != nil:
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		var file Brandfile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		apply(&cfg, &file)
	}

	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(base, cfg.Root)
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "root", cfg.Root)
	}
	cfg.Root = root

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// apply overlays the non-empty fields of file onto cfg.
func apply(cfg *domain.Config, file *Brandfile) {
	if file.Root != "" {
		cfg.Root = file.Root
	}
	if file.SrcDir != "" {
		cfg.SrcDir = filepath.Clean(file.SrcDir)
	}
	if file.ClientEntry != "" {
		cfg.ClientEntry = file.ClientEntry
	}
	if file.ServerEntry != "" {
		cfg.ServerEntry = file.ServerEntry
	}
	if file.FrontierConfig != "" {
		cfg.FrontierConfig = file.FrontierConfig
	}
	if len(file.StyleExtensions) > 0 {
		cfg.StyleExtensions = normalizeExtensions(file.StyleExtensions)
	}
	if len(file.SkipDirs) > 0 {
		cfg.SkipDirs = file.SkipDirs
	}
	if file.Mode != "" {
		cfg.Mode = domain.Mode(strings.ToLower(file.Mode))
	}
}

// normalizeExtensions lowercases extensions and adds a missing leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
