package types

type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortNewest     SortKey = "newest"
	SortRatingDesc SortKey = "rating"
)

var SortKeys = []SortKey{SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRatingDesc}

var sortAliases = map[string]SortKey{
	"":                  SortFeatured,
	"featured":          SortFeatured,
	"price-asc":         SortPriceAsc,
	"price-ascending":   SortPriceAsc,
	"price_asc":         SortPriceAsc,
	"price":             SortPriceAsc,
	"price-desc":        SortPriceDesc,
	"price-descending":  SortPriceDesc,
	"price_desc":        SortPriceDesc,
	"newest":            SortNewest,
	"rating":            SortRatingDesc,
	"rating-desc":       SortRatingDesc,
	"rating-descending": SortRatingDesc,
}

// ParseSortKey maps a request value to a sort key. Unknown values yield
// SortFeatured and false.
func ParseSortKey(value string) (SortKey, bool) {
	if key, ok := sortAliases[value]; ok {
		return key, true
	}
	return SortFeatured, false
}

func (s SortKey) IsValid() bool {
	_, ok := sortAliases[string(s)]
	return ok && s != ""
}
