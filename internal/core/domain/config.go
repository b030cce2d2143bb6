package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects between the interactive dev server and static bundling.
type Mode string

const (
	ModeDev   Mode = "dev"
	ModeBuild Mode = "build"
)

const (
	// DefaultConfigFile is the engine configuration file looked up in the project root.
	DefaultConfigFile = "brandlay.yaml"
	// DefaultFrontierConfig is the declared entrypoint list.
	DefaultFrontierConfig = "frontier.config.yaml"
	// BrandsDir is the directory name that holds brand overlays.
	BrandsDir = "brands"
)

// Config is the resolved engine configuration for one build session.
type Config struct {
	// Root is the absolute project root.
	Root string
	// SrcDir is the source tree, relative to Root.
	SrcDir string
	// ClientEntry is the root-relative id of the default client entry.
	ClientEntry string
	// ServerEntry is the root-relative id of the default server entry.
	ServerEntry string
	// FrontierConfig is the entrypoint list file, relative to Root.
	FrontierConfig string
	// StyleExtensions lists the extensions treated as stylesheet sources.
	StyleExtensions []string
	// SkipDirs lists directory names never scanned for brands.
	SkipDirs []string
	Mode     Mode
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Root:           ".",
		SrcDir:         "src",
		ClientEntry:    "/src/entry-client.tsx",
		ServerEntry:    "/src/entry-server.tsx",
		FrontierConfig: DefaultFrontierConfig,
		StyleExtensions: []string{
			".css", ".scss", ".sass", ".less", ".styl", ".stylus", ".pcss", ".postcss", ".sss",
		},
		SkipDirs: []string{"node_modules"},
		Mode:     ModeDev,
	}
}

// SourceRoot returns the absolute source tree path.
func (c Config) SourceRoot() string {
	return filepath.Join(c.Root, c.SrcDir)
}

// SourcePrefix returns the root-relative id prefix of the source tree, e.g. "/src".
func (c Config) SourcePrefix() string {
	return "/" + strings.Trim(filepath.ToSlash(c.SrcDir), "/")
}

// IsStyle reports whether the path has a stylesheet extension.
func (c Config) IsStyle(path string) bool {
	ext := strings.ToLower(filepath.Ext(StripQuery(path)))
	return ext != "" && slices.Contains(c.StyleExtensions, ext)
}

// BootstrapID returns the virtual per-brand client bootstrap id.
func (c Config) BootstrapID(brand string) string {
	return c.SourcePrefix() + "/__brand__/" + brand + "/entry-client.ts"
}

// Validate checks the values that the engine relies on.
func (c Config) Validate() error {
	switch {
	case c.Root == "":
		return zerr.With(ErrInvalidConfig, "field", "root")
	case c.SrcDir == "" || filepath.IsAbs(c.SrcDir):
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "srcDir"), "value", c.SrcDir)
	case !strings.HasPrefix(c.ClientEntry, "/"):
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "clientEntry"), "value", c.ClientEntry)
	case !strings.HasPrefix(c.ServerEntry, "/"):
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "serverEntry"), "value", c.ServerEntry)
	case c.Mode != ModeDev && c.Mode != ModeBuild:
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "mode"), "value", string(c.Mode))
	}
	return nil
}
