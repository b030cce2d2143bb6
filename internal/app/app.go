// Package app implements the application layer for brandlay.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/brandlay/internal/adapters/cache"
	"go.trai.ch/brandlay/internal/adapters/fs"
	"go.trai.ch/brandlay/internal/adapters/metrics"
	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports"
	"go.trai.ch/brandlay/internal/engine/entries"
	"go.trai.ch/brandlay/internal/engine/frontier"
	"go.trai.ch/brandlay/internal/engine/overlay"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	entrypoints  ports.EntrypointLoader
	checker      ports.PathChecker
	logger       ports.Logger
	tracer       ports.Tracer
	metrics      *metrics.Recorder
	newWatcher   ports.WatcherFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	entrypoints ports.EntrypointLoader,
	checker ports.PathChecker,
	log ports.Logger,
	tracer ports.Tracer,
	recorder *metrics.Recorder,
	newWatcher ports.WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		entrypoints:  entrypoints,
		checker:      checker,
		logger:       log,
		tracer:       tracer,
		metrics:      recorder,
		newWatcher:   newWatcher,
	}
}

// Options are the per-invocation settings layered over the config file.
type Options struct {
	// ConfigPath is the engine configuration file.
	ConfigPath string
	// Root overrides the project root when set.
	Root string
	// Mode overrides the session mode when set.
	Mode string
}

// Session is one configured overlay engine with its host resolver.
type Session struct {
	Config   domain.Config
	Engine   *overlay.Engine
	Host     *fs.ModuleResolver
	Caches   *cache.Session
	Frontier *frontier.Module
}

// Open loads the configuration and builds a primed session.
func (a *App) Open(_ context.Context, opts Options) (*Session, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Root != "" {
		root, err := filepath.Abs(opts.Root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "root", opts.Root)
		}
		cfg.Root = root
	}
	if opts.Mode != "" {
		cfg.Mode = domain.Mode(opts.Mode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	srcRoot := cfg.SourceRoot()
	if info, err := os.Stat(srcRoot); err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrSourceRootNotFound, "path", srcRoot)
	}

	caches := cache.NewSession(fs.NewScanner(cfg.SkipDirs...), a.checker, a.metrics)
	host := fs.NewModuleResolver(cfg.Root)
	fm := frontier.New(cfg, a.entrypoints, a.logger)
	engine := overlay.New(
		cfg,
		caches,
		host,
		fm,
		a.logger,
		a.tracer,
		a.metrics,
	)
	engine.Configured(cfg.Root)

	return &Session{Config: cfg, Engine: engine, Host: host, Caches: caches, Frontier: fm}, nil
}

// BrandReport lists the discovered brands.
type BrandReport struct {
	Brands      []string
	Fingerprint string
}

// Brands discovers the brands of the configured source tree.
func (a *App) Brands(ctx context.Context, opts Options) (BrandReport, error) {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return BrandReport{}, err
	}
	brands := s.Engine.Brands()
	return BrandReport{Brands: brands.Sorted(), Fingerprint: brands.Fingerprint()}, nil
}

// Entries returns the build inputs for target.
func (a *App) Entries(ctx context.Context, opts Options, target string) (domain.BuildInputs, error) {
	t, err := domain.ParseTarget(target)
	if err != nil {
		return domain.BuildInputs{}, err
	}
	s, err := a.Open(ctx, opts)
	if err != nil {
		return domain.BuildInputs{}, err
	}
	if t == domain.TargetAll {
		return s.Engine.Config(), nil
	}
	return entries.Build(s.Config, s.Engine.Brands(), t), nil
}

// ResolveRequest is a single resolution run through the hook chain.
type ResolveRequest struct {
	Specifier string
	Importer  string
	SSR       bool
}

// Resolve runs req through the overlay engine and falls back to default
// resolution when the engine leaves it alone.
func (a *App) Resolve(ctx context.Context, opts Options, req ResolveRequest) (string, error) {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return "", err
	}
	return s.Resolve(ctx, req)
}

// Resolve runs req through the session's hook chain.
func (s *Session) Resolve(ctx context.Context, req ResolveRequest) (string, error) {
	ro := domain.ResolveOptions{SSR: req.SSR}

	res, err := s.Engine.ResolveID(ctx, req.Specifier, req.Importer, ro)
	if err != nil {
		return "", err
	}
	if res == nil {
		res, err = s.Host.Resolve(ctx, req.Specifier, req.Importer, ro)
		if err != nil {
			return "", err
		}
	}
	if res == nil {
		return "", zerr.With(zerr.With(domain.ErrModuleNotFound, "specifier", req.Specifier), "importer", req.Importer)
	}
	return res.ID, nil
}

// Load returns the body of a synthetic module.
func (a *App) Load(ctx context.Context, opts Options, id string) (string, error) {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return "", err
	}
	src, ok, err := s.Engine.Load(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", zerr.With(domain.ErrModuleNotFound, "id", id)
	}
	return src, nil
}

// RewriteHTML applies the dev index rewrite for requestURL.
func (a *App) RewriteHTML(ctx context.Context, opts Options, html, requestURL string) (string, error) {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return "", err
	}
	return s.Engine.TransformIndexHTML(html, requestURL), nil
}

// Routes returns the declared entrypoint routes. With a non-empty url only
// the route serving it is returned, which is the default client entry when
// no entrypoint matches.
func (a *App) Routes(ctx context.Context, opts Options, url string) ([]frontier.Route, error) {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	ep, err := a.entrypoints.Load(s.Frontier.ConfigPath())
	if err != nil {
		return nil, err
	}
	routes := frontier.Routes(ep, s.Config.SourcePrefix())
	if url == "" {
		return routes, nil
	}
	return []frontier.Route{frontier.Lookup(routes, url, s.Config.ClientEntry)}, nil
}

// Watch runs the file-watch invalidator over the source tree until ctx is
// done, then logs the cache counters.
func (a *App) Watch(ctx context.Context, opts Options) error {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if err := w.Start(ctx, s.Config.SourceRoot()); err != nil {
			return err
		}
		a.logger.Info("watching for brand changes",
			"root", s.Config.SourceRoot(),
			"brands", strings.Join(s.Engine.Brands().Sorted(), ","),
		)
		return s.Engine.DevServerStart(ctx, w)
	})
	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})

	err = g.Wait()
	a.logSummary()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) logSummary() {
	samples, err := a.metrics.Summary()
	if err != nil {
		a.logger.Warn("metrics unavailable", "error", err.Error())
		return
	}
	for _, s := range samples {
		a.logger.Info("metric", "name", s.Name, "value", s.Value)
	}
}

type formattableLogger interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// SetLogFormat switches the logger between pretty and JSON output and
// toggles debug logging.
func (a *App) SetLogFormat(jsonMode, verbose bool) {
	l, ok := a.logger.(formattableLogger)
	if !ok {
		return
	}
	l.SetJSON(jsonMode)
	l.SetVerbose(verbose)
}
