package types

import "strings"

const BrandSpecificationKey = "brand"

type Product struct {
	Id             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency,omitempty"`
	CategoryId     string            `json:"categoryId"`
	Rating         *float64          `json:"rating,omitempty"`
	InStock        *bool             `json:"inStock,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

func (p *Product) GetRating() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p *Product) IsInStock() bool {
	if p.InStock == nil {
		return true
	}
	return *p.InStock
}

// GetSpecification looks up a specification value, ignoring key case.
func (p *Product) GetSpecification(key string) (string, bool) {
	if v, ok := p.Specifications[key]; ok {
		return v, true
	}
	for k, v := range p.Specifications {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}
