package facet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/matst80/slask-storefront/pkg/types"
)

// BrandPattern maps a brand name to the product name pattern that implies it.
type BrandPattern struct {
	Name    string `mapstructure:"name"`
	Pattern string `mapstructure:"pattern"`
}

var DefaultBrandPatterns = []BrandPattern{
	{Name: "Apple", Pattern: `\b(apple|iphone|ipad|macbook|imac|airpods)\b`},
	{Name: "Samsung", Pattern: `\b(samsung|galaxy)\b`},
	{Name: "Sony", Pattern: `\b(sony|playstation|bravia)\b`},
	{Name: "LG", Pattern: `\blg\b`},
	{Name: "Google", Pattern: `\b(google|pixel)\b`},
	{Name: "Microsoft", Pattern: `\b(microsoft|xbox|surface)\b`},
	{Name: "Dell", Pattern: `\b(dell|alienware)\b`},
	{Name: "HP", Pattern: `\b(hp|hewlett[- ]packard)\b`},
	{Name: "Lenovo", Pattern: `\b(lenovo|thinkpad)\b`},
	{Name: "Asus", Pattern: `\basus\b`},
	{Name: "Bose", Pattern: `\bbose\b`},
	{Name: "Nike", Pattern: `\bnike\b`},
	{Name: "Adidas", Pattern: `\badidas\b`},
	{Name: "Puma", Pattern: `\bpuma\b`},
	{Name: "Levi's", Pattern: `\blevi'?s?\b`},
	{Name: "Zara", Pattern: `\bzara\b`},
}

type compiledBrand struct {
	name    string
	pattern *regexp.Regexp
}

// BrandResolver resolves the brand of a product, either from its explicit
// brand specification or by matching its name against a brand table.
type BrandResolver struct {
	brands []compiledBrand
}

// NewBrandResolver compiles the table; patterns are matched without case and
// tried in table order. A pattern left empty matches the brand name as a word.
func NewBrandResolver(patterns []BrandPattern) (*BrandResolver, error) {
	r := &BrandResolver{brands: make([]compiledBrand, 0, len(patterns))}
	for _, p := range patterns {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("brand pattern %q has no name", p.Pattern)
		}
		expr := p.Pattern
		if expr == "" {
			expr = `\b` + regexp.QuoteMeta(name) + `\b`
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("brand %s: %w", name, err)
		}
		r.brands = append(r.brands, compiledBrand{name: name, pattern: re})
	}
	return r, nil
}

// MustBrandResolver is NewBrandResolver for static tables.
func MustBrandResolver(patterns []BrandPattern) *BrandResolver {
	r, err := NewBrandResolver(patterns)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultResolver = MustBrandResolver(DefaultBrandPatterns)

func DefaultBrandResolver() *BrandResolver {
	return defaultResolver
}

// Resolve returns the brand of the product and false when none is known.
func (r *BrandResolver) Resolve(p *types.Product) (string, bool) {
	if v, ok := p.GetSpecification(types.BrandSpecificationKey); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	if r == nil {
		return "", false
	}
	for _, b := range r.brands {
		if b.pattern.MatchString(p.Name) {
			return b.name, true
		}
	}
	return "", false
}

func (r *BrandResolver) Names() []string {
	ret := make([]string, len(r.brands))
	for i, b := range r.brands {
		ret[i] = b.name
	}
	return ret
}
