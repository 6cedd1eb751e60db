package locale

import (
	"context"
	"log/slog"
	"slices"
)

// Composed dispatches each category to the backend selected for it when the
// owning Manager was built.
type Composed struct {
	names    []string
	backends []Backend
	selected [categorySlots]int

	logger  *slog.Logger
	metrics *Metrics
}

// Install attaches the facet for a single category using the selected
// backend. Zero or multiple bits, or an unselected category, return l
// unchanged.
func (c *Composed) Install(l Locale, category Category, kind FacetKind) Locale {
	if !category.Single() {
		return l
	}
	id := c.selected[category.slot()]
	if id < 0 || id >= len(c.backends) {
		c.debug("category not selected", slog.String("category", category.String()))
		c.metrics.installSkipped(category)
		return l
	}
	name := c.names[id]
	out := c.backends[id].Install(l, category, kind)
	if !out.Has(category) {
		c.debug("backend installed nothing", slog.String("backend", name), slog.String("category", category.String()))
		c.metrics.installSkipped(category)
		return out
	}
	c.metrics.installed(name, category)
	return out
}

// SetOption forwards the option to every held backend.
func (c *Composed) SetOption(name, value string) {
	for _, b := range c.backends {
		b.SetOption(name, value)
	}
}

// ClearOptions forwards to every held backend.
func (c *Composed) ClearOptions() {
	for _, b := range c.backends {
		b.ClearOptions()
	}
}

// Clone deep copies every held backend.
func (c *Composed) Clone() Backend {
	return c.clone()
}

func (c *Composed) clone() *Composed {
	return &Composed{
		names:    slices.Clone(c.names),
		backends: cloneBackends(c.backends),
		selected: c.selected,
		logger:   c.logger,
		metrics:  c.metrics,
	}
}

// Selected names the backend chosen for a single category.
func (c *Composed) Selected(category Category) (string, bool) {
	return selectedName(category, c.names, c.selected)
}

// Names lists the held backends.
func (c *Composed) Names() []string {
	return slices.Clone(c.names)
}

func (c *Composed) observe(logger *slog.Logger, metrics *Metrics) {
	c.logger = logger
	c.metrics = metrics
}

func (c *Composed) debug(msg string, attrs ...slog.Attr) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

var _ Backend = (*Composed)(nil)
