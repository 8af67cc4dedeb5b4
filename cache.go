package sqltpl

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TemplateCache keeps compiled templates keyed by their source text, so hot
// templates are parsed once. Safe for concurrent use; one cache can be
// shared between builders.
type TemplateCache struct {
	lru *lru.Cache[uint64, *template]
}

// NewTemplateCache creates a cache holding up to size compiled templates,
// evicting the least recently used one when full.
func NewTemplateCache(size int) (*TemplateCache, error) {
	c, err := lru.New[uint64, *template](size)
	if err != nil {
		return nil, err
	}
	return &TemplateCache{lru: c}, nil
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	return c.lru.Len()
}

// Purge removes all cached templates.
func (c *TemplateCache) Purge() {
	c.lru.Purge()
}

// get returns the compiled form of source if cached. Keys are xxhash sums,
// so the source text is verified on every hit.
func (c *TemplateCache) get(source string) (*template, bool) {
	t, ok := c.lru.Get(xxhash.Sum64String(source))
	if !ok || t.source != source {
		return nil, false
	}
	return t, true
}

func (c *TemplateCache) put(t *template) {
	c.lru.Add(xxhash.Sum64String(t.source), t)
}
