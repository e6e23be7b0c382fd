package types

import (
	"math"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// FacetQuery is the deep-link form of a FacetState, as found in a storefront
// url query string, e.g. ?cat=phones&brand=apple&min=100&max=900&sort=price-asc
type FacetQuery struct {
	Categories []string `schema:"cat"`
	Brands     []string `schema:"brand"`
	MinPrice   *float64 `schema:"min"`
	MaxPrice   *float64 `schema:"max"`
	MinRating  *float64 `schema:"rating"`
	InStock    bool     `schema:"stock"`
	Query      string   `schema:"q"`
	Sort       string   `schema:"sort,default:featured"`
	Count      int      `schema:"count"`
}

// CategoryResolver expands a category id or slug into its inclusive
// descendant id set.
type CategoryResolver interface {
	Expand(idOrSlug string) (IdSet, bool)
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func splitValues(values []string) []string {
	ret := make([]string, 0, len(values))
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				ret = append(ret, part)
			}
		}
	}
	return ret
}

func ParseFacetQuery(query url.Values) (*FacetQuery, error) {
	q := &FacetQuery{}
	if err := decoder.Decode(q, query); err != nil {
		return nil, err
	}
	q.Categories = splitValues(q.Categories)
	q.Brands = splitValues(q.Brands)
	return q, nil
}

func ParseFacetQueryString(raw string) (*FacetQuery, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, err
	}
	return ParseFacetQuery(values)
}

func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// ToState builds a FacetState. Selected categories are expanded through the
// resolver; categories it does not know are skipped.
func (q *FacetQuery) ToState(resolver CategoryResolver, pageSize int) FacetState {
	state := NewFacetState(pageSize)
	if q.Count > state.VisibleCount {
		state.VisibleCount = q.Count
	}
	if resolver != nil {
		for _, c := range q.Categories {
			if ids, ok := resolver.Expand(c); ok {
				state.CategoryIds.Merge(ids)
			}
		}
	}
	if isFinite(q.MinPrice) {
		state.Price.Min = *q.MinPrice
	}
	if isFinite(q.MaxPrice) {
		state.Price.Max = *q.MaxPrice
	}
	for _, b := range q.Brands {
		state.Brands.Add(b)
	}
	if isFinite(q.MinRating) {
		r := *q.MinRating
		state.MinRating = &r
	}
	state.InStockOnly = q.InStock
	state.Query = q.Query
	state.Sort, _ = ParseSortKey(q.Sort)
	return state
}
