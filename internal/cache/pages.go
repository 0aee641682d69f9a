package cache

import (
	"sync"

	"github.com/bewise-id/admin-web/internal/catalog"
)

// Pages memoizes normalized list/search results, keyed by the fully
// resolved request URL (search term + page + limit). A deletion must
// invalidate the key being displayed so the next render reflects removal;
// a create invalidates everything since any page may have shifted.
type Pages struct {
	mu      sync.RWMutex
	entries map[string]catalog.Page
}

func NewPages() *Pages {
	return &Pages{entries: make(map[string]catalog.Page)}
}

func (p *Pages) Get(key string) (catalog.Page, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	page, ok := p.entries[key]
	return page, ok
}

func (p *Pages) Put(key string, page catalog.Page) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[key] = page
}

func (p *Pages) Invalidate(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, key)
}

func (p *Pages) InvalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = make(map[string]catalog.Page)
}
