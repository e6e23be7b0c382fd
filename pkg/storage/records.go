package storage

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/matst80/slask-storefront/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type categoryRecord struct {
	Id          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	ParentId    string `json:"parentId"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// productRecord keeps price as a pointer so a missing price can be told
// apart from a zero one.
type productRecord struct {
	Id             string            `json:"id" validate:"required"`
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Price          *float64          `json:"price" validate:"required,gte=0"`
	Currency       string            `json:"currency"`
	CategoryId     string            `json:"categoryId"`
	Rating         *float64          `json:"rating" validate:"omitempty,gte=0"`
	InStock        *bool             `json:"inStock"`
	Specifications map[string]string `json:"specifications"`
}

func (r *categoryRecord) toCategory() (types.Category, error) {
	if err := validate.Struct(r); err != nil {
		return types.Category{}, fmt.Errorf("%w: category %q: %v", ErrInvalidRecord, r.Id, err)
	}
	return types.Category{
		Id:          r.Id,
		Name:        r.Name,
		Slug:        r.Slug,
		ParentId:    r.ParentId,
		Image:       r.Image,
		Description: r.Description,
	}, nil
}

func (r *productRecord) toProduct() (types.Product, error) {
	if err := validate.Struct(r); err != nil {
		return types.Product{}, fmt.Errorf("%w: product %q: %v", ErrInvalidRecord, r.Id, err)
	}
	return types.Product{
		Id:             r.Id,
		Name:           r.Name,
		Description:    r.Description,
		Price:          *r.Price,
		Currency:       r.Currency,
		CategoryId:     r.CategoryId,
		Rating:         r.Rating,
		InStock:        r.InStock,
		Specifications: r.Specifications,
	}, nil
}
