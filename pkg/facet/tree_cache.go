package facet

import (
	"sync"

	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

// TreeCache memoizes the last built tree and rebuilds only when the value of
// the flat category list changes. The cached tree must be treated as
// read-only by callers.
type TreeCache struct {
	mu     sync.RWMutex
	key    uint64
	length int
	tree   *CategoryTree
	log    *zap.Logger
}

func NewTreeCache(log *zap.Logger) *TreeCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &TreeCache{log: log}
}

// Get returns the tree for the categories and whether it came from the cache.
func (c *TreeCache) Get(categories []types.Category) (*CategoryTree, bool) {
	key := fingerprint(categories)
	c.mu.RLock()
	if c.tree != nil && c.key == key && c.length == len(categories) {
		tree := c.tree
		c.mu.RUnlock()
		return tree, true
	}
	c.mu.RUnlock()

	tree := NewCategoryTree(categories)
	if orphans := tree.Orphans(categories); len(orphans) > 0 {
		c.log.Warn("categories left out of tree",
			zap.Int("count", len(orphans)),
			zap.Strings("ids", orphans))
	}

	c.mu.Lock()
	c.key = key
	c.length = len(categories)
	c.tree = tree
	c.mu.Unlock()
	return tree, false
}

func (c *TreeCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = nil
}
