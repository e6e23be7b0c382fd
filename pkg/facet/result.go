package facet

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matst80/slask-storefront/pkg/types"
)

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Counts holds, per facet dimension, how many products would match each value
// given all the other active facets.
type Counts struct {
	Brands     []ValueCount     `json:"brands"`
	Categories map[string]int   `json:"categories"`
	Price      types.PriceRange `json:"price"`
	HasPrice   bool             `json:"hasPrice"`
}

// CountFacets computes brand, category and price facet values over the
// products. Category counts include the products of descendant categories.
func CountFacets(products []types.Product, state types.FacetState, brands *BrandResolver, tree *CategoryTree) Counts {
	if brands == nil {
		brands = DefaultBrandResolver()
	}
	filters := NewFilters(state, brands)
	ret := Counts{
		Brands:     countBrands(filters.WithOut(BrandFacet).Apply(products), brands),
		Categories: countCategories(filters.WithOut(CategoryFacet).Apply(products), tree),
	}
	ret.Price, ret.HasPrice = PriceBounds(filters.WithOut(PriceFacet).Apply(products))
	return ret
}

func countBrands(products []types.Product, brands *BrandResolver) []ValueCount {
	counts := map[string]int{}
	display := map[string]string{}
	for i := range products {
		brand, ok := brands.Resolve(&products[i])
		if !ok {
			continue
		}
		key := strings.ToLower(brand)
		if _, seen := display[key]; !seen {
			display[key] = brand
		}
		counts[key]++
	}
	ret := make([]ValueCount, 0, len(counts))
	for k, c := range counts {
		ret = append(ret, ValueCount{Value: display[k], Count: c})
	}
	slices.SortFunc(ret, func(a, b ValueCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return ret
}

func countCategories(products []types.Product, tree *CategoryTree) map[string]int {
	ret := map[string]int{}
	if tree == nil {
		return ret
	}
	paths := map[string][]*types.Category{}
	for i := range products {
		id := products[i].CategoryId
		path, ok := paths[id]
		if !ok {
			path, _ = tree.PathTo(id)
			paths[id] = path
		}
		for _, node := range path {
			ret[node.Id]++
		}
	}
	return ret
}
