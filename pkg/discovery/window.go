package discovery

import "github.com/matst80/slask-storefront/pkg/types"

// Paginate returns the first visibleCount products and whether more remain.
func Paginate(products []types.Product, visibleCount int) ([]types.Product, bool) {
	visibleCount = max(visibleCount, 0)
	n := min(visibleCount, len(products))
	return products[:n:n], visibleCount < len(products)
}
