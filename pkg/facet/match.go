package facet

import (
	"github.com/matst80/slask-storefront/pkg/search"
	"github.com/matst80/slask-storefront/pkg/types"
)

type FacetId string

const (
	CategoryFacet FacetId = "category"
	PriceFacet    FacetId = "price"
	BrandFacet    FacetId = "brand"
	RatingFacet   FacetId = "rating"
	StockFacet    FacetId = "stock"
	SearchFacet   FacetId = "search"
)

// Filter is one facet predicate. Inactive filters are never part of a
// Filters list.
type Filter interface {
	Id() FacetId
	IsActive() bool
	Match(p *types.Product) bool
}

type CategoryFilter struct {
	Ids types.IdSet
}

func (f CategoryFilter) Id() FacetId    { return CategoryFacet }
func (f CategoryFilter) IsActive() bool { return len(f.Ids) > 0 }
func (f CategoryFilter) Match(p *types.Product) bool {
	return f.Ids.Contains(p.CategoryId)
}

type BrandFilter struct {
	Brands   types.StringSet
	Resolver *BrandResolver
}

func (f BrandFilter) Id() FacetId    { return BrandFacet }
func (f BrandFilter) IsActive() bool { return len(f.Brands) > 0 }
func (f BrandFilter) Match(p *types.Product) bool {
	brand, ok := f.Resolver.Resolve(p)
	return ok && f.Brands.Contains(brand)
}

type RatingFilter struct {
	Min *float64
}

func (f RatingFilter) Id() FacetId    { return RatingFacet }
func (f RatingFilter) IsActive() bool { return f.Min != nil }
func (f RatingFilter) Match(p *types.Product) bool {
	return p.GetRating() >= *f.Min
}

type SearchFilter struct {
	matcher *search.Matcher
}

func NewSearchFilter(query string) SearchFilter {
	return SearchFilter{matcher: search.NewMatcher(query)}
}

func (f SearchFilter) Id() FacetId    { return SearchFacet }
func (f SearchFilter) IsActive() bool { return f.matcher != nil && !f.matcher.IsEmpty() }
func (f SearchFilter) Match(p *types.Product) bool {
	return f.matcher.Match(p.Name, p.Description)
}

// Filters is the AND-composition of the active facets of a FacetState.
type Filters []Filter

// NewFilters collects the active facets of the state. The price facet is
// always included.
func NewFilters(state types.FacetState, brands *BrandResolver) Filters {
	if brands == nil {
		brands = DefaultBrandResolver()
	}
	all := []Filter{
		CategoryFilter{Ids: state.CategoryIds},
		PriceFilter{Range: state.Price},
		BrandFilter{Brands: state.Brands, Resolver: brands},
		RatingFilter{Min: state.MinRating},
		StockFilter{InStockOnly: state.InStockOnly},
		NewSearchFilter(state.Query),
	}
	ret := make(Filters, 0, len(all))
	for _, f := range all {
		if f.IsActive() {
			ret = append(ret, f)
		}
	}
	return ret
}

func (f Filters) Match(p *types.Product) bool {
	for _, filter := range f {
		if !filter.Match(p) {
			return false
		}
	}
	return true
}

// WithOut returns the filters except the one with the given id.
func (f Filters) WithOut(id FacetId) Filters {
	ret := make(Filters, 0, len(f))
	for _, filter := range f {
		if filter.Id() != id {
			ret = append(ret, filter)
		}
	}
	return ret
}

func (f Filters) Has(id FacetId) bool {
	for _, filter := range f {
		if filter.Id() == id {
			return true
		}
	}
	return false
}

// Apply keeps the products that match every filter, in input order.
func (f Filters) Apply(products []types.Product) []types.Product {
	ret := make([]types.Product, 0, len(products))
	for i := range products {
		if f.Match(&products[i]) {
			ret = append(ret, products[i])
		}
	}
	return ret
}

// Apply filters the products with every active facet of the state.
func Apply(products []types.Product, state types.FacetState, brands *BrandResolver) []types.Product {
	return NewFilters(state, brands).Apply(products)
}
