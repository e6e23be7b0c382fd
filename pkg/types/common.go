package types

// Category is one node of the storefront category hierarchy. The flat list is
// the source of truth; Children is only populated on nodes produced by the
// tree builder.
type Category struct {
	Id          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	ParentId    string      `json:"parentId,omitempty"`
	Image       string      `json:"image,omitempty"`
	Description string      `json:"description,omitempty"`
	Children    []*Category `json:"children,omitempty"`
}

func (c *Category) IsRoot() bool {
	return c.ParentId == ""
}

// Node returns a childless copy of the category.
func (c *Category) Node() *Category {
	return &Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		ParentId:    c.ParentId,
		Image:       c.Image,
		Description: c.Description,
	}
}
