package facet

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

type StockFilter struct {
	InStockOnly bool
}

func (f StockFilter) Id() FacetId    { return StockFacet }
func (f StockFilter) IsActive() bool { return f.InStockOnly }
func (f StockFilter) Match(p *types.Product) bool {
	return p.IsInStock()
}
