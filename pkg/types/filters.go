package types

import (
	"math"
	"strings"
)

const DefaultPageSize = 12

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FullPriceRange places no constraint on price.
func FullPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: math.Inf(1)}
}

func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price <= r.Max
}

func (r PriceRange) IsFull() bool {
	return r.Min <= 0 && math.IsInf(r.Max, 1)
}

// FacetState is the complete filter, sort and window configuration of one
// browsing session. It is treated as an immutable value: every With* method
// returns a modified copy and leaves the receiver untouched.
type FacetState struct {
	CategoryIds  IdSet
	Price        PriceRange
	Brands       StringSet
	MinRating    *float64
	InStockOnly  bool
	Query        string
	Sort         SortKey
	VisibleCount int
}

func NewFacetState(pageSize int) FacetState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return FacetState{
		CategoryIds:  IdSet{},
		Price:        FullPriceRange(),
		Brands:       StringSet{},
		Sort:         SortFeatured,
		VisibleCount: pageSize,
	}
}

// Clone returns a copy that shares no sets with the receiver.
func (f FacetState) Clone() FacetState {
	ret := f
	ret.CategoryIds = f.CategoryIds.Clone()
	ret.Brands = f.Brands.Clone()
	if f.MinRating != nil {
		r := *f.MinRating
		ret.MinRating = &r
	}
	return ret
}

// WithCategories replaces the selected category set. The ids are expected to
// be descendant-expanded already.
func (f FacetState) WithCategories(ids IdSet) FacetState {
	ret := f.Clone()
	ret.CategoryIds = ids.Clone()
	return ret
}

func (f FacetState) WithPrice(r PriceRange) FacetState {
	ret := f.Clone()
	ret.Price = r
	return ret
}

func (f FacetState) WithBrands(brands ...string) FacetState {
	ret := f.Clone()
	ret.Brands = NewStringSet(brands...)
	return ret
}

// ToggleBrand adds the brand if missing, otherwise removes it.
func (f FacetState) ToggleBrand(brand string) FacetState {
	ret := f.Clone()
	if ret.Brands.Contains(brand) {
		ret.Brands.Remove(brand)
	} else {
		ret.Brands.Add(brand)
	}
	return ret
}

// WithMinRating sets the rating threshold, nil clears it.
func (f FacetState) WithMinRating(threshold *float64) FacetState {
	ret := f.Clone()
	if threshold == nil {
		ret.MinRating = nil
	} else {
		r := *threshold
		ret.MinRating = &r
	}
	return ret
}

func (f FacetState) WithInStockOnly(v bool) FacetState {
	ret := f.Clone()
	ret.InStockOnly = v
	return ret
}

func (f FacetState) WithQuery(q string) FacetState {
	ret := f.Clone()
	ret.Query = q
	return ret
}

func (f FacetState) WithSort(key SortKey) FacetState {
	ret := f.Clone()
	ret.Sort = key
	return ret
}

// LoadMore grows the visible window by one page.
func (f FacetState) LoadMore(pageSize int) FacetState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	ret := f.Clone()
	ret.VisibleCount += pageSize
	return ret
}

// ClearAllFilters resets every facet to its inactive value and the sort to
// featured. The visible count is kept as is.
func (f FacetState) ClearAllFilters() FacetState {
	return FacetState{
		CategoryIds:  IdSet{},
		Price:        FullPriceRange(),
		Brands:       StringSet{},
		Sort:         SortFeatured,
		VisibleCount: f.VisibleCount,
	}
}

func (f FacetState) SearchText() string {
	return strings.TrimSpace(f.Query)
}

// HasActiveFilters reports whether any facet constrains the result. The sort
// key is not a facet.
func (f FacetState) HasActiveFilters() bool {
	return len(f.CategoryIds) > 0 ||
		!f.Price.IsFull() ||
		len(f.Brands) > 0 ||
		f.MinRating != nil ||
		f.InStockOnly ||
		f.SearchText() != ""
}
