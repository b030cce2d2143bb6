// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/brandlay/internal/core/domain"
)

// ModuleResolver is the host pipeline's default module resolution.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve resolves specifier relative to importer.
	// It returns nil, nil when the specifier cannot be resolved.
	Resolve(ctx context.Context, specifier, importer string, opts domain.ResolveOptions) (*domain.ResolvedModule, error)
}
