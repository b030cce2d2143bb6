package ports

import "go.trai.ch/brandlay/internal/core/domain"

// ConfigLoader defines the interface for loading the engine configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, falling back to defaults when
	// the file does not exist. Relative roots are resolved against the file's directory.
	Load(path string) (domain.Config, error)
}

// EntrypointLoader reads the declared entrypoint list.
type EntrypointLoader interface {
	// Load returns the entrypoints declared in the file at path. A missing file
	// yields an empty list.
	Load(path string) (domain.Entrypoints, error)
}
