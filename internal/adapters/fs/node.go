package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/brandlay/internal/core/ports"
)

// CheckerNodeID is the unique identifier for the path checker Graft node.
const CheckerNodeID graft.ID = "adapter.fs.checker"

func init() {
	graft.Register(graft.Node[ports.PathChecker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathChecker, error) {
			return NewChecker(), nil
		},
	})
}
