package sorting

import (
	"cmp"
	"slices"

	"github.com/matst80/slask-storefront/pkg/types"
)

// Sort returns a reordered copy of the products. Featured keeps the input
// order, newest reverses it, and the price and rating orders are stable.
// Unknown keys behave as featured.
func Sort(products []types.Product, key types.SortKey) []types.Product {
	ret := slices.Clone(products)
	if ret == nil {
		ret = []types.Product{}
	}
	switch key {
	case types.SortPriceAsc:
		slices.SortStableFunc(ret, func(a, b types.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case types.SortPriceDesc:
		slices.SortStableFunc(ret, func(a, b types.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case types.SortRatingDesc:
		slices.SortStableFunc(ret, func(a, b types.Product) int {
			return cmp.Compare(b.GetRating(), a.GetRating())
		})
	case types.SortNewest:
		// No timestamp on products; the catalog is assumed to list oldest first.
		slices.Reverse(ret)
	}
	return ret
}
