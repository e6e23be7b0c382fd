package discovery

import (
	"testing"

	"github.com/matst80/slask-storefront/pkg/types"
)

func TestPaginate(t *testing.T) {
	products := []types.Product{{Id: "1"}, {Id: "2"}, {Id: "3"}}
	cases := []struct {
		visible  int
		expected int
		hasMore  bool
	}{
		{visible: 0, expected: 0, hasMore: true},
		{visible: 2, expected: 2, hasMore: true},
		{visible: 3, expected: 3, hasMore: false},
		{visible: 12, expected: 3, hasMore: false},
		{visible: -4, expected: 0, hasMore: true},
	}
	for _, c := range cases {
		items, hasMore := Paginate(products, c.visible)
		if len(items) != c.expected {
			t.Errorf("Expected %d items for window %d, got %d", c.expected, c.visible, len(items))
		}
		if hasMore != c.hasMore {
			t.Errorf("Expected hasMore %v for window %d", c.hasMore, c.visible)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	items, hasMore := Paginate(nil, 12)
	if len(items) != 0 || hasMore {
		t.Errorf("Expected empty window, got %d items (more: %v)", len(items), hasMore)
	}
}

func TestPaginateCannotAppendIntoSource(t *testing.T) {
	products := []types.Product{{Id: "1"}, {Id: "2"}}
	items, _ := Paginate(products, 1)
	_ = append(items, types.Product{Id: "x"})
	if products[1].Id != "2" {
		t.Error("Expected window append to leave the source untouched")
	}
}
