package config

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/brandlay/internal/adapters/logger"
	"go.trai.ch/brandlay/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the configuration loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// FrontierNodeID is the unique identifier for the entrypoint loader Graft node.
	FrontierNodeID graft.ID = "adapter.frontier_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.EntrypointLoader]{
		ID:        FrontierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EntrypointLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFrontierLoader(log), nil
		},
	})
}
