package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the brandlay configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the brandlay configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrSourceRootNotFound is returned when the configured source directory does not exist.
	ErrSourceRootNotFound = zerr.New("source root not found")

	// ErrEntrypointsReadFailed is returned when the declared entrypoint list cannot be read.
	ErrEntrypointsReadFailed = zerr.New("failed to read entrypoints file")

	// ErrEntrypointsParseFailed is returned when the declared entrypoint list is not valid YAML.
	ErrEntrypointsParseFailed = zerr.New("failed to parse entrypoints file")

	// ErrMalformedBridgeID is returned when a style bridge identifier cannot be decoded.
	ErrMalformedBridgeID = zerr.New("malformed style bridge id")

	// ErrModuleNotFound is returned when no resolver in the pipeline can resolve a specifier.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrUnknownBrand is returned when a brand named on the command line was not discovered.
	ErrUnknownBrand = zerr.New("unknown brand")

	// ErrUnknownTarget is returned when a build target other than client, server or all is requested.
	ErrUnknownTarget = zerr.New("unknown build target, expected 'client', 'server' or 'all'")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
