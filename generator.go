package locale

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Generator builds Locale values from descriptors using a snapshot of a
// Manager. It is safe for concurrent use.
type Generator struct {
	manager    *Manager
	categories Category
	kinds      FacetKind
	options    []backendOption
	configs    []*BackendConfig
	caching    bool
	logger     *slog.Logger
	metrics    *Metrics

	mu    sync.Mutex
	cache map[Descriptor]Locale
}

type backendOption struct {
	name  string
	value string
}

// GeneratorOption mutates a Generator during construction.
type GeneratorOption func(*Generator) error

// NewGenerator builds a Generator. Without WithManager it snapshots Global.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		categories: AllCategories,
		kinds:      AllFacetKinds,
		caching:    true,
		logger:     slog.New(slog.DiscardHandler),
		cache:      make(map[Descriptor]Locale),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	if g.manager == nil {
		g.manager = Global()
	}
	for _, cfg := range g.configs {
		if err := cfg.Apply(g.manager); err != nil {
			return nil, err
		}
	}

	g.logger.Debug("locale generator ready",
		slog.Any("backends", g.manager.Names()),
		slog.String("categories", g.categories.String()),
	)
	return g, nil
}

// WithManager uses a copy of m instead of the process-wide manager.
func WithManager(m *Manager) GeneratorOption {
	return func(g *Generator) error {
		if m == nil {
			return fmt.Errorf("%w: nil manager", ErrUnsupportedConfig)
		}
		g.manager = m.Clone()
		return nil
	}
}

// WithCategories limits the categories installed into generated locales.
func WithCategories(categories Category) GeneratorOption {
	return func(g *Generator) error {
		if categories == 0 {
			return fmt.Errorf("%w: empty category set", ErrUnsupportedConfig)
		}
		g.categories = categories
		return nil
	}
}

// WithFacetKinds selects the character kinds facets are installed for.
func WithFacetKinds(kinds FacetKind) GeneratorOption {
	return func(g *Generator) error {
		g.kinds = kinds
		return nil
	}
}

// WithBackendOption passes an option to every backend before installing.
func WithBackendOption(name, value string) GeneratorOption {
	return func(g *Generator) error {
		if name == "" {
			return fmt.Errorf("%w: empty option name", ErrUnsupportedConfig)
		}
		g.options = append(g.options, backendOption{name: name, value: value})
		return nil
	}
}

// WithBackendConfig applies a loaded configuration: its selections, its
// options and its category list.
func WithBackendConfig(cfg *BackendConfig) GeneratorOption {
	return func(g *Generator) error {
		if cfg == nil {
			return nil
		}
		categories, err := cfg.CategoryMask()
		if err != nil {
			return err
		}
		g.categories = categories
		g.configs = append(g.configs, cfg)
		for name, value := range cfg.Options {
			g.options = append(g.options, backendOption{name: name, value: value})
		}
		return nil
	}
}

// WithCaching toggles the per descriptor cache. Caching is on by default.
func WithCaching(enabled bool) GeneratorOption {
	return func(g *Generator) error {
		g.caching = enabled
		return nil
	}
}

func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) error {
		if logger != nil {
			g.logger = logger
		}
		return nil
	}
}

func WithMetrics(metrics *Metrics) GeneratorOption {
	return func(g *Generator) error {
		g.metrics = metrics
		return nil
	}
}

// Manager returns a copy of the generator's manager.
func (g *Generator) Manager() *Manager {
	return g.manager.Clone()
}

// Categories reports the categories installed by Generate.
func (g *Generator) Categories() Category {
	return g.categories
}

// Generate returns a Locale for desc with every configured category
// installed from the selected backends. Categories nobody provides are left
// out.
func (g *Generator) Generate(desc Descriptor) Locale {
	if g.caching {
		g.mu.Lock()
		l, ok := g.cache[desc]
		g.mu.Unlock()
		if ok {
			g.metrics.cacheHit()
			return l
		}
	}

	l := g.build(desc)

	if g.caching {
		g.mu.Lock()
		if cached, ok := g.cache[desc]; ok {
			l = cached
		} else {
			g.cache[desc] = l
		}
		g.mu.Unlock()
	}
	return l
}

func (g *Generator) build(desc Descriptor) Locale {
	composed := g.manager.Build()
	composed.observe(g.logger, g.metrics)
	for _, opt := range g.options {
		composed.SetOption(opt.name, opt.value)
	}

	l := New(desc)
	for _, category := range KnownCategories() {
		if g.categories&category == 0 {
			continue
		}
		l = composed.Install(l, category, g.kinds)
	}

	g.logger.LogAttrs(context.Background(), slog.LevelDebug, "locale generated",
		slog.String("locale", desc.String()),
		slog.String("installed", l.Categories().String()),
	)
	return l
}

// ClearCache drops every cached locale.
func (g *Generator) ClearCache() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.cache)
}
