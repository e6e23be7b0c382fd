package discovery

import (
	"sync"

	"github.com/google/uuid"
	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/facet"
	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

// Session is the controller a hosting view owns for one browsing session.
// Facet changes replace the FacetState and schedule a debounced recompute;
// the latest settled Result is kept and handed to the OnResult callback.
type Session struct {
	Id uuid.UUID

	mu         sync.RWMutex
	engine     *Engine
	products   []types.Product
	categories []types.Category
	state      types.FacetState
	result     Result
	onResult   func(Result)
	debouncer  *common.Debouncer
	closed     bool
	log        *zap.Logger
}

type SessionOption func(*Session)

// OnResult registers a callback receiving every settled Result. It is called
// without the session lock held and never after Close returns.
func OnResult(fn func(Result)) SessionOption {
	return func(s *Session) {
		s.onResult = fn
	}
}

// WithState starts the session from a given state instead of a cleared one.
func WithState(state types.FacetState) SessionOption {
	return func(s *Session) {
		s.state = state.Clone()
	}
}

func NewSession(engine *Engine, products []types.Product, categories []types.Category, opts ...SessionOption) *Session {
	s := &Session{
		Id:         uuid.New(),
		engine:     engine,
		products:   products,
		categories: categories,
		state:      engine.NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = engine.log.With(zap.String("session", s.Id.String()))
	s.debouncer = common.NewDebouncer(engine.settleDelay, s.recompute, common.WithCancelHook(func() {
		noCancelledRecomputes.Inc()
	}))
	s.result = engine.ComputeResults(products, categories, s.state)
	activeSessions.Inc()
	return s
}

func (s *Session) recompute() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	state := s.state
	res := s.engine.ComputeResults(s.products, s.categories, state)
	s.result = res
	cb := s.onResult
	s.mu.Unlock()

	s.log.Debug("recomputed",
		zap.Int("total", res.Total),
		zap.Int("visible", len(res.Items)),
		zap.Bool("hasMore", res.HasMore))
	if cb != nil {
		cb(res)
	}
}

// Update applies a state transition and schedules a debounced recompute.
func (s *Session) Update(fn func(types.FacetState) types.FacetState) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = fn(s.state)
	s.mu.Unlock()
	s.debouncer.Trigger()
}

// SelectCategory selects the category and everything under it. An empty id
// or an id missing from the tree clears the category facet.
func (s *Session) SelectCategory(id string) {
	var ids types.IdSet
	if id != "" {
		ids, _ = s.Tree().Expand(id)
	}
	if ids == nil {
		ids = types.IdSet{}
	}
	s.Update(func(f types.FacetState) types.FacetState {
		return f.WithCategories(ids)
	})
}

func (s *Session) ToggleBrand(brand string) {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.ToggleBrand(brand)
	})
}

func (s *Session) SetPriceRange(r types.PriceRange) {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.WithPrice(r)
	})
}

func (s *Session) SetMinRating(threshold *float64) {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.WithMinRating(threshold)
	})
}

func (s *Session) SetInStockOnly(v bool) {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.WithInStockOnly(v)
	})
}

func (s *Session) SetQuery(q string) {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.WithQuery(q)
	})
}

func (s *Session) SetSort(key types.SortKey) {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.WithSort(key)
	})
}

// ClearAllFilters resets every facet and the sort. The visible count is kept.
func (s *Session) ClearAllFilters() {
	s.Update(func(f types.FacetState) types.FacetState {
		return f.ClearAllFilters()
	})
}

// LoadMore grows the visible window by one page and recomputes right away.
// Called while a recompute is running, for instance from the OnResult
// callback, the new recompute starts as soon as the running one returns.
func (s *Session) LoadMore() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = s.state.LoadMore(s.engine.pageSize)
	s.mu.Unlock()
	s.debouncer.Trigger()
	s.debouncer.Flush()
}

// SetCatalog replaces the products and categories and schedules a recompute.
func (s *Session) SetCatalog(products []types.Product, categories []types.Category) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.products = products
	s.categories = categories
	s.mu.Unlock()
	s.debouncer.Trigger()
}

// Flush runs a pending recompute immediately.
func (s *Session) Flush() bool {
	return s.debouncer.Flush()
}

// State returns a copy of the current state.
func (s *Session) State() types.FacetState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Result returns the latest settled result.
func (s *Session) Result() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// IsComputing is true from a facet change until its recompute has settled.
func (s *Session) IsComputing() bool {
	return s.debouncer.IsComputing()
}

func (s *Session) HasActiveFilters() bool {
	return s.State().HasActiveFilters()
}

func (s *Session) Tree() *facet.CategoryTree {
	s.mu.RLock()
	categories := s.categories
	s.mu.RUnlock()
	return s.engine.Tree(categories)
}

// Close cancels any pending recompute. No result is reported after Close
// returns. Close must not be called from the OnResult callback.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.debouncer.Dispose()
	activeSessions.Dec()
}
