package discovery

import (
	"time"

	"github.com/matst80/slask-storefront/pkg/facet"
	"github.com/matst80/slask-storefront/pkg/sorting"
	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

// Result is the visible window of a filtered and sorted catalog.
type Result struct {
	Items   []types.Product `json:"items"`
	Total   int             `json:"total"`
	HasMore bool            `json:"hasMore"`
	Facets  *facet.Counts   `json:"facets,omitempty"`
}

type EngineOptions struct {
	PageSize    int
	SettleDelay time.Duration
	Brands      *facet.BrandResolver
	// CountFacets adds facet value counts to every result.
	CountFacets bool
	Logger      *zap.Logger
}

func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		PageSize:    types.DefaultPageSize,
		SettleDelay: 300 * time.Millisecond,
		Brands:      facet.DefaultBrandResolver(),
		CountFacets: true,
	}
}

// Engine runs the filter, sort and paginate pipeline. It keeps no state
// besides the memoized category tree and is safe for concurrent use.
type Engine struct {
	pageSize    int
	settleDelay time.Duration
	brands      *facet.BrandResolver
	countFacets bool
	trees       *facet.TreeCache
	log         *zap.Logger
}

func NewEngine(opts EngineOptions) *Engine {
	if opts.PageSize < 1 {
		opts.PageSize = types.DefaultPageSize
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}
	if opts.Brands == nil {
		opts.Brands = facet.DefaultBrandResolver()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Engine{
		pageSize:    opts.PageSize,
		settleDelay: opts.SettleDelay,
		brands:      opts.Brands,
		countFacets: opts.CountFacets,
		trees:       facet.NewTreeCache(opts.Logger),
		log:         opts.Logger,
	}
}

func (e *Engine) PageSize() int {
	return e.pageSize
}

func (e *Engine) Brands() *facet.BrandResolver {
	return e.brands
}

// NewState returns a cleared FacetState showing the first page.
func (e *Engine) NewState() types.FacetState {
	return types.NewFacetState(e.pageSize)
}

// Tree returns the category tree for the flat list, rebuilt only when the
// list changed since the previous call.
func (e *Engine) Tree(categories []types.Category) *facet.CategoryTree {
	tree, hit := e.trees.Get(categories)
	if hit {
		noTreeBuilds.WithLabelValues("hit").Inc()
	} else {
		noTreeBuilds.WithLabelValues("build").Inc()
	}
	return tree
}

// Filter applies the active facets of the state, keeping product order.
func (e *Engine) Filter(products []types.Product, state types.FacetState) []types.Product {
	return facet.Apply(products, state, e.brands)
}

// ComputeResults filters, sorts and paginates the products for the state.
// It is a pure function of its inputs.
func (e *Engine) ComputeResults(products []types.Product, categories []types.Category, state types.FacetState) Result {
	start := time.Now()
	defer func() {
		noComputations.Inc()
		computeDuration.Observe(time.Since(start).Seconds())
	}()

	sorted := sorting.Sort(e.Filter(products, state), state.Sort)
	items, hasMore := Paginate(sorted, state.VisibleCount)
	ret := Result{
		Items:   items,
		Total:   len(sorted),
		HasMore: hasMore,
	}
	if e.countFacets {
		counts := facet.CountFacets(products, state, e.brands, e.Tree(categories))
		ret.Facets = &counts
	}
	return ret
}
