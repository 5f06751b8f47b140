// Package regen serializes regenerate-and-apply flows. Generation
// itself is never cancelled mid-flight; instead every request carries a
// sequence number and a result is only applied while it is still the
// newest one requested, so out-of-order completions cannot leave a
// stale theme on the sink.
package regen

import (
	"context"
	"sync"

	"github.com/seedtheme/seedtheme/internal/applier"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

// Coordinator hands out sequence numbers and gates applies on them.
type Coordinator struct {
	mu        sync.Mutex
	generator *scheme.Generator
	requested uint64
	applied   uint64
}

// NewCoordinator wraps a generator. A nil generator gets the default
// engine.
func NewCoordinator(generator *scheme.Generator) *Coordinator {
	if generator == nil {
		generator = scheme.NewGenerator(nil)
	}
	return &Coordinator{generator: generator}
}

// Generate derives a scheme and returns it together with its request
// sequence number. Safe for concurrent use.
func (c *Coordinator) Generate(ctx context.Context, seedColor string, contrastLevel float64) (scheme.Scheme, uint64, error) {
	c.mu.Lock()
	c.requested++
	seq := c.requested
	c.mu.Unlock()

	result, err := c.generator.Generate(ctx, seedColor, contrastLevel)
	if err != nil {
		return nil, seq, err
	}
	return result, seq, nil
}

// Apply pushes a generated scheme onto the sink if its sequence number
// is still the newest requested and newer than anything already
// applied. It reports whether the scheme was applied; a stale result is
// discarded without error.
func (c *Coordinator) Apply(seq uint64, s scheme.Scheme, sink applier.StyleSink) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.requested || seq <= c.applied {
		return false, nil
	}
	if err := applier.Apply(s, sink); err != nil {
		return false, err
	}
	c.applied = seq
	return true, nil
}

// Run generates and applies in one step, discarding the result if a
// newer request arrived while this one was being derived.
func (c *Coordinator) Run(ctx context.Context, seedColor string, contrastLevel float64, sink applier.StyleSink) (bool, error) {
	result, seq, err := c.Generate(ctx, seedColor, contrastLevel)
	if err != nil {
		return false, err
	}
	return c.Apply(seq, result, sink)
}
