package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/brandlay/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brandlay/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/brandlay/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brandlay/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/brandlay/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/brandlay/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/brandlay/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.FrontierNodeID,
			fs.CheckerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			watcher.WatcherNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	entrypoints, err := graft.Dep[ports.EntrypointLoader](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[ports.PathChecker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, entrypoints, checker, log, tracer, recorder, newWatcher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log}, nil
}
