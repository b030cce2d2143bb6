package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
)

const defaultFrontierName = "default"

var _ ports.EntrypointLoader = (*FrontierLoader)(nil)

// FrontierLoader reads the declared entrypoints from frontier.config.yaml.
type FrontierLoader struct {
	Logger ports.Logger
}

// NewFrontierLoader creates a new entrypoint loader.
func NewFrontierLoader(log ports.Logger) *FrontierLoader {
	return &FrontierLoader{Logger: log}
}

// Load returns the entrypoints declared at path. A missing file, or one
// without an entrypoints list, declares nothing.
func (l *FrontierLoader) Load(path string) (domain.Entrypoints, error) {
	empty := domain.Entrypoints{Name: defaultFrontierName}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug("no entrypoint list", "path", path)
		return empty, nil
	}
	if err != nil {
		return domain.Entrypoints{}, zerr.With(zerr.Wrap(err, domain.ErrEntrypointsReadFailed.Error()), "path", path)
	}

	var file Frontierfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Entrypoints{}, zerr.With(zerr.Wrap(err, domain.ErrEntrypointsParseFailed.Error()), "path", path)
	}

	out := domain.Entrypoints{Name: file.Name, Paths: file.Entrypoints}
	if out.Name == "" {
		out.Name = defaultFrontierName
	}
	return out, nil
}
