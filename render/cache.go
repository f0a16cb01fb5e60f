// Package render turns a tree into text for hosts that redraw it after
// every command, and caches the result per tree version.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
)

// View selects the textual form.
type View int

const (
	// Levels is the breadth-first, one block per level dump.
	Levels View = iota
	// Outline is the indented depth-first form with ties.
	Outline
)

func (v View) String() string {
	switch v {
	case Levels:
		return "levels"
	case Outline:
		return "outline"
	default:
		return "unknown"
	}
}

// Source is what the cache needs from a tree. ID and Version together must
// identify one exact tree state.
type Source interface {
	ID() uint64
	Version() uint64
	WriteLevels(w io.Writer) error
	WriteTree(w io.Writer) error
}

// Config sizes the underlying ristretto cache.
type Config struct {
	NumCounters int64 // keys tracked for admission, ~10x expected entries
	MaxCost     int64 // total bytes of rendered text kept
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits      uint64
	Misses    uint64
	CostAdded uint64
}

// Cache memoizes rendered text. A new tree version never hits an entry
// written for an older one, so no invalidation is needed.
type Cache struct {
	c *ristretto.Cache[string, string]
}

func NewCache(cfg Config) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}
	return &Cache{c: c}, nil
}

func cacheKey(src Source, view View) string {
	return fmt.Sprintf("%d/%d/%s", src.ID(), src.Version(), view)
}

// Render returns the text for src in the given view.
func (c *Cache) Render(src Source, view View) (string, error) {
	key := cacheKey(src, view)
	if text, ok := c.c.Get(key); ok {
		return text, nil
	}

	text, err := Text(src, view)
	if err != nil {
		return "", err
	}
	c.c.Set(key, text, int64(len(text)))
	return text, nil
}

// Wait blocks until pending writes are visible to Render.
func (c *Cache) Wait() {
	c.c.Wait()
}

func (c *Cache) Stats() Stats {
	m := c.c.Metrics
	return Stats{
		Hits:      m.Hits(),
		Misses:    m.Misses(),
		CostAdded: m.CostAdded(),
	}
}

func (c *Cache) Close() {
	c.c.Close()
}

// Text renders src without caching.
func Text(src Source, view View) (string, error) {
	var sb strings.Builder
	var err error
	switch view {
	case Levels:
		err = src.WriteLevels(&sb)
	case Outline:
		err = src.WriteTree(&sb)
	default:
		return "", fmt.Errorf("unknown view %d", int(view))
	}
	if err != nil {
		return "", fmt.Errorf("render %s: %w", view, err)
	}
	return sb.String(), nil
}
