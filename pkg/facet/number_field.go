package facet

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

type PriceFilter struct {
	Range types.PriceRange
}

func (f PriceFilter) Id() FacetId    { return PriceFacet }
func (f PriceFilter) IsActive() bool { return true }
func (f PriceFilter) Match(p *types.Product) bool {
	return f.Range.Contains(p.Price)
}

// PriceBounds returns the lowest and highest price of the products, false
// when there are none.
func PriceBounds(products []types.Product) (types.PriceRange, bool) {
	if len(products) == 0 {
		return types.PriceRange{}, false
	}
	ret := types.PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		ret.Min = min(ret.Min, p.Price)
		ret.Max = max(ret.Max, p.Price)
	}
	return ret, true
}
