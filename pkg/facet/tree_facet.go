package facet

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

// CategoryTree is a built forest with flat lookups by id and slug.
type CategoryTree struct {
	Roots  []*types.Category
	flat   []*types.Category
	byId   map[string]*types.Category
	bySlug map[string]*types.Category
	parent map[string]string
}

func NewCategoryTree(categories []types.Category) *CategoryTree {
	return newCategoryTree(BuildCategoryTree(categories))
}

func newCategoryTree(roots []*types.Category) *CategoryTree {
	flat := FlattenCategoryTree(roots)
	t := &CategoryTree{
		Roots:  roots,
		flat:   flat,
		byId:   make(map[string]*types.Category, len(flat)),
		bySlug: make(map[string]*types.Category, len(flat)),
		parent: make(map[string]string, len(flat)),
	}
	for _, node := range flat {
		if _, ok := t.byId[node.Id]; !ok {
			t.byId[node.Id] = node
		}
		if node.Slug != "" {
			if _, ok := t.bySlug[node.Slug]; !ok {
				t.bySlug[node.Slug] = node
			}
		}
		for _, child := range node.Children {
			// a child already indexed is a repeated id, not a real edge
			if _, ok := t.byId[child.Id]; ok {
				continue
			}
			if _, ok := t.parent[child.Id]; !ok {
				t.parent[child.Id] = node.Id
			}
		}
	}
	return t
}

// Flat returns every node in pre-order.
func (t *CategoryTree) Flat() []*types.Category {
	return t.flat
}

func (t *CategoryTree) Len() int {
	return len(t.flat)
}

func (t *CategoryTree) FindById(id string) (*types.Category, bool) {
	node, ok := t.byId[id]
	return node, ok
}

func (t *CategoryTree) FindBySlug(slug string) (*types.Category, bool) {
	node, ok := t.bySlug[slug]
	return node, ok
}

func (t *CategoryTree) find(idOrSlug string) (*types.Category, bool) {
	if node, ok := t.byId[idOrSlug]; ok {
		return node, true
	}
	return t.FindBySlug(idOrSlug)
}

// Expand implements types.CategoryResolver.
func (t *CategoryTree) Expand(idOrSlug string) (types.IdSet, bool) {
	node, ok := t.find(idOrSlug)
	if !ok {
		return nil, false
	}
	return GetAllCategoryIds(node), true
}

// PathTo returns the chain of nodes from a root down to the category.
func (t *CategoryTree) PathTo(id string) ([]*types.Category, bool) {
	node, ok := t.byId[id]
	if !ok {
		return nil, false
	}
	ret := []*types.Category{node}
	seen := types.NewIdSet(id)
	for {
		parentId, ok := t.parent[node.Id]
		if !ok || seen.Contains(parentId) {
			break
		}
		seen.Add(parentId)
		node = t.byId[parentId]
		ret = append(ret, node)
	}
	for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
		ret[i], ret[j] = ret[j], ret[i]
	}
	return ret, true
}

// Orphans returns the ids of the input categories that did not make it into
// the tree, in input order.
func (t *CategoryTree) Orphans(categories []types.Category) []string {
	ret := make([]string, 0)
	for _, c := range categories {
		if _, ok := t.byId[c.Id]; !ok {
			ret = append(ret, c.Id)
		}
	}
	return ret
}
