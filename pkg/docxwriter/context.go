package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/render"
)

// Context carries the state of one document write. Boundary maps are keyed by
// container identity, so sections and table cells never share list groups.
// A Context is not safe for concurrent use.
type Context struct {
	config     *Config
	logger     *Logger
	mode       render.GroupMode
	boundaries map[model.Container]*render.Boundaries
}

// NewContext creates a context for one write. A nil config uses the global
// configuration.
func NewContext(config *Config) *Context {
	if config == nil {
		config = GetGlobalConfig()
	}
	return &Context{
		config:     config,
		logger:     configLogger(config),
		mode:       config.GroupMode(),
		boundaries: make(map[model.Container]*render.Boundaries),
	}
}

// WithLogger replaces the logger used for diagnostics and returns the context.
func (c *Context) WithLogger(logger *Logger) *Context {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Config returns the configuration of the write.
func (c *Context) Config() *Config {
	return c.config
}

// Prepare analyses container and, recursively, the cells of every table it
// holds. Writers called afterwards only read the stored results.
func (c *Context) Prepare(container model.Container) {
	if container == nil {
		return
	}
	c.analyze(container)
	for _, el := range container.Elements() {
		table, ok := el.(*model.Table)
		if !ok {
			continue
		}
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				c.Prepare(cell)
			}
		}
	}
}

// Boundaries returns the list boundaries of container, analysing it on first
// use. A nil container has no boundaries.
func (c *Context) Boundaries(container model.Container) *render.Boundaries {
	if container == nil {
		return nil
	}
	if b, ok := c.boundaries[container]; ok {
		return b
	}
	return c.analyze(container)
}

func (c *Context) analyze(container model.Container) *render.Boundaries {
	b := render.AnalyzeListBoundaries(container.Elements(), c.mode)
	c.boundaries[container] = b
	if b.Len() > 0 {
		c.logger.Debug("analysed %d list group(s) in %T", b.Len(), container)
	}
	return b
}

// Prepared reports how many containers have boundary data.
func (c *Context) Prepared() int {
	return len(c.boundaries)
}

// Reset discards all boundary data.
func (c *Context) Reset() {
	c.boundaries = make(map[model.Container]*render.Boundaries)
}

// mismatch handles a writer being given an element of the wrong kind: an
// error in strict mode, a logged no-op otherwise.
func (c *Context) mismatch(op string, el model.Element) error {
	if c.config.StrictMode {
		return newElementError(op, el, ErrElementMismatch)
	}
	c.logger.Debug("%s: skipping %T", op, el)
	return nil
}
