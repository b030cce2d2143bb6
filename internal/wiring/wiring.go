// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/brandlay/internal/adapters/config"
	_ "go.trai.ch/brandlay/internal/adapters/fs"
	_ "go.trai.ch/brandlay/internal/adapters/logger"
	_ "go.trai.ch/brandlay/internal/adapters/metrics"
	_ "go.trai.ch/brandlay/internal/adapters/telemetry"
	_ "go.trai.ch/brandlay/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/brandlay/internal/app"
)
