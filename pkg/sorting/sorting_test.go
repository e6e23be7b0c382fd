package sorting

import (
	"testing"

	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/stretchr/testify/assert"
)

func rating(v float64) *float64 {
	return &v
}

func ids(products []types.Product) []string {
	ret := make([]string, len(products))
	for i, p := range products {
		ret[i] = p.Id
	}
	return ret
}

var catalog = []types.Product{
	{Id: "a", Price: 20, Rating: rating(4)},
	{Id: "b", Price: 10},
	{Id: "c", Price: 20, Rating: rating(5)},
	{Id: "d", Price: 5, Rating: rating(4)},
}

func TestFeaturedKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(Sort(catalog, types.SortFeatured)))
}

func TestPriceAscendingIsStable(t *testing.T) {
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids(Sort(catalog, types.SortPriceAsc)))
}

func TestPriceDescendingIsStable(t *testing.T) {
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(Sort(catalog, types.SortPriceDesc)))
}

func TestRatingDescendingTreatsMissingAsZero(t *testing.T) {
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids(Sort(catalog, types.SortRatingDesc)))
}

func TestNewestReversesOrder(t *testing.T) {
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(Sort(catalog, types.SortNewest)))
}

func TestUnknownKeyIsFeatured(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(Sort(catalog, types.SortKey("popular"))))
}

func TestSortDoesNotModifyInput(t *testing.T) {
	input := []types.Product{{Id: "x", Price: 3}, {Id: "y", Price: 1}}
	Sort(input, types.SortPriceAsc)
	Sort(input, types.SortNewest)
	if input[0].Id != "x" || input[1].Id != "y" {
		t.Errorf("Expected input to be untouched, got %v", ids(input))
	}
}

func TestSortEmpty(t *testing.T) {
	res := Sort(nil, types.SortPriceAsc)
	if res == nil || len(res) != 0 {
		t.Errorf("Expected empty non nil slice, got %v", res)
	}
}
