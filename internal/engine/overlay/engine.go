// Package overlay implements the brand overlay engine: it decides, for every
// module request, whether a brand-specific file replaces or augments the
// base file, and serves the synthetic modules that decision needs.
package overlay

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
	"go.trai.ch/brandlay/internal/engine/entries"
	"go.trai.ch/brandlay/internal/engine/frontier"
)

// Resolution outcomes reported to metrics and spans.
const (
	OutcomeOverlay     = "overlay"
	OutcomeBridge      = "bridge"
	OutcomeBase        = "base"
	OutcomePassthrough = "passthrough"
)

// Engine is the overlay engine of one build session. All state lives in the
// injected cache session, so engines never share caches implicitly.
type Engine struct {
	cfg       domain.Config
	srcRoot   string
	srcPrefix string

	caches   ports.CacheSession
	host     ports.ModuleResolver
	frontier *frontier.Module

	log     ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics

	entryScript *regexp.Regexp
	invalidator *Invalidator
}

// New creates an Engine for cfg.
func New(
	cfg domain.Config,
	caches ports.CacheSession,
	host ports.ModuleResolver,
	fm *frontier.Module,
	log ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Engine {
	e := &Engine{
		cfg:         cfg,
		srcRoot:     cfg.SourceRoot(),
		srcPrefix:   cfg.SourcePrefix(),
		caches:      caches,
		host:        host,
		frontier:    fm,
		log:         log,
		tracer:      tracer,
		metrics:     metrics,
		entryScript: entryScriptPattern(cfg.ClientEntry),
	}
	e.invalidator = NewInvalidator(caches, e.srcRoot, log)
	return e
}

// Config returns the build inputs for every discovered brand.
func (e *Engine) Config() domain.BuildInputs {
	return entries.Build(e.cfg, e.Brands(), domain.TargetAll)
}

// Configured primes the brand registry for root's source tree.
func (e *Engine) Configured(root string) domain.BrandSet {
	brands := e.caches.Snapshot().Brands(e.srcRoot)
	e.invalidator.Prime(brands)
	e.log.Debug("brands discovered", "root", root, "count", brands.Len(), "brands", strings.Join(brands.Sorted(), ","))
	return brands
}

// Brands returns the brands of the current cache generation.
func (e *Engine) Brands() domain.BrandSet {
	return e.caches.Snapshot().Brands(e.srcRoot)
}

// DevServerStart feeds w's events to the invalidator until the stream ends or
// ctx is done. The entrypoint list is registered with w on the next frontier
// load.
func (e *Engine) DevServerStart(ctx context.Context, w ports.Watcher) error {
	if e.frontier != nil {
		e.frontier.SetWatcher(w)
	}
	for ev := range w.Events() {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.invalidator.Handle(ev)
	}
	return ctx.Err()
}

// Invalidator returns the engine's file-watch invalidator.
func (e *Engine) Invalidator() *Invalidator {
	return e.invalidator
}

// ResolveID is the overlay entry point. It returns nil when the request is
// left to default resolution. Errors from the host resolver are returned
// unchanged.
func (e *Engine) ResolveID(
	ctx context.Context,
	specifier, importer string,
	opts domain.ResolveOptions,
) (*domain.ResolvedModule, error) {
	ctx, span := e.tracer.Start(ctx, "overlay.resolve")
	defer span.End()
	span.SetAttribute("specifier", specifier)

	res, err := e.resolve(ctx, span, domain.ModuleRequest{Specifier: specifier, Importer: importer, Options: opts})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if res != nil {
		span.SetAttribute("id", res.ID)
	}
	return res, nil
}

func (e *Engine) resolve(ctx context.Context, span ports.Span, req domain.ModuleRequest) (*domain.ResolvedModule, error) {
	// Bridge constituents bypass the overlay entirely.
	if domain.ParseAnnotations(req.Specifier).Bridged {
		return e.host.Resolve(ctx, domain.RemoveQueryKeys(req.Specifier, domain.QueryBridged), req.Importer, req.Options)
	}

	// One view per request: invalidation never tears a resolution.
	view := e.caches.Snapshot()
	known := view.Brands(e.srcRoot)

	if e.frontier != nil {
		if res, ok := e.resolveFrontier(req, known); ok {
			return res, nil
		}
	}

	if brand, ok := entries.ParseBootstrapID(e.cfg, req.Specifier); ok {
		if !known.Has(brand) {
			return nil, nil
		}
		return &domain.ResolvedModule{ID: domain.StripQuery(req.Specifier)}, nil
	}

	brand, rule, ok := InferBrand(req, known)
	if !ok {
		e.metrics.Redirect(OutcomePassthrough)
		return nil, nil
	}
	span.SetAttribute("brand", brand)
	span.SetAttribute("rule", rule)
	e.log.Debug("brand inferred", "brand", brand, "rule", rule, "specifier", req.Specifier)

	spec := domain.RemoveQueryKeys(req.Specifier, domain.QueryBrand, domain.QueryLegacyBrand)
	resolved, err := e.host.Resolve(ctx, spec, req.Importer, req.Options)
	if err != nil || resolved == nil {
		return nil, err
	}
	if resolved.IsVirtual() || !InsideSource(resolved.ID, e.srcRoot, e.cfg.Root, e.srcPrefix) {
		return resolved, nil
	}

	if e.cfg.IsStyle(resolved.Path()) {
		return e.resolveStyle(view, resolved, brand), nil
	}
	return e.resolveOverlay(ctx, view, req, resolved, brand), nil
}

// resolveFrontier claims virtual:frontier. A bare import from a
// brand-governed importer is scoped to that brand.
func (e *Engine) resolveFrontier(req domain.ModuleRequest, known domain.BrandSet) (*domain.ResolvedModule, bool) {
	spec := req.Specifier
	if spec == frontier.ID {
		if brand, _, ok := InferBrand(domain.ModuleRequest{Importer: req.Importer}, known); ok {
			spec = domain.AppendQuery(spec, domain.QueryBrand, brand)
		}
	}
	id, ok := e.frontier.Resolve(spec)
	if !ok {
		return nil, false
	}
	return &domain.ResolvedModule{ID: id}, true
}

// resolveOverlay substitutes the brand's overlay for a resolved script when
// one exists. A failed overlay resolve falls back to the base.
func (e *Engine) resolveOverlay(
	ctx context.Context,
	view ports.CacheView,
	req domain.ModuleRequest,
	resolved *domain.ResolvedModule,
	brand string,
) *domain.ResolvedModule {
	base := ToFSPath(resolved.ID, e.cfg.Root, e.srcPrefix)
	candidate := ComputeOverlayPath(resolved.ID, brand, e.cfg.Root, e.srcPrefix)
	if candidate != base && view.Exists(candidate) {
		spec := candidate
		if q := resolved.Query(); q != "" {
			spec += "?" + q
		}
		overlay, err := e.host.Resolve(ctx, spec, req.Importer, req.Options)
		switch {
		case err != nil:
			e.log.Debug("overlay resolve failed, using base", "path", candidate, "error", err.Error())
		case overlay == nil:
			e.log.Debug("overlay did not resolve, using base", "path", candidate)
		case overlay.IsVirtual():
			e.metrics.Redirect(OutcomeOverlay)
			return overlay
		default:
			e.metrics.Redirect(OutcomeOverlay)
			e.log.Debug("overlay redirect", "brand", brand, "from", base, "to", overlay.Path())
			return tagged(overlay, brand)
		}
	}
	e.metrics.Redirect(OutcomeBase)
	return tagged(resolved, brand)
}

// resolveStyle bridges a stylesheet with its overlay when both sides exist.
// Stylesheets without a bridge are returned as resolved.
func (e *Engine) resolveStyle(view ports.CacheView, resolved *domain.ResolvedModule, brand string) *domain.ResolvedModule {
	path := ToFSPath(resolved.ID, e.cfg.Root, e.srcPrefix)
	candidate := ComputeOverlayPath(resolved.ID, brand, e.cfg.Root, e.srcPrefix)

	var b domain.Bridge
	switch {
	case candidate != path:
		if !view.Exists(candidate) {
			e.metrics.Redirect(OutcomeBase)
			return resolved
		}
		b = domain.Bridge{Base: path, Overlay: candidate}
	default:
		base, ok := ComputeBasePathFromOverlay(path, brand, e.cfg.Root, e.srcPrefix)
		if !ok || !view.Exists(base) {
			e.metrics.Redirect(OutcomeOverlay)
			return resolved
		}
		b = domain.Bridge{Base: base, Overlay: path}
	}
	b.Kind = domain.StyleKind(b.Base)

	e.metrics.Redirect(OutcomeBridge)
	e.log.Debug("style bridge synthesized", "brand", brand, "kind", b.Kind.String(), "base", b.Base, "overlay", b.Overlay)
	return &domain.ResolvedModule{ID: b.ID()}
}

// Load returns the body of a synthetic module. It reports false for ids the
// engine does not own.
func (e *Engine) Load(ctx context.Context, id string) (string, bool, error) {
	ctx, span := e.tracer.Start(ctx, "overlay.load")
	defer span.End()
	span.SetAttribute("id", id)

	switch {
	case domain.IsBridgeID(id):
		b, err := domain.ParseBridgeID(id)
		if err != nil {
			span.RecordError(err)
			return "", false, err
		}
		return BridgeSource(b), true, nil

	case e.frontier != nil && e.frontier.Owns(id):
		src, err := e.frontier.Load(ctx, id, e.Brands())
		if err != nil {
			span.RecordError(err)
			return "", false, err
		}
		return src, true, nil
	}

	if brand, ok := entries.ParseBootstrapID(e.cfg, id); ok && e.Brands().Has(brand) {
		return entries.BootstrapSource(e.cfg, brand), true, nil
	}
	return "", false, nil
}

// tagged propagates brand to downstream imports through the id's query.
func tagged(m *domain.ResolvedModule, brand string) *domain.ResolvedModule {
	return &domain.ResolvedModule{
		ID:       domain.AppendQuery(m.ID, domain.QueryLegacyBrand, brand),
		External: m.External,
	}
}
