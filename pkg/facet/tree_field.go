package facet

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

// BuildCategoryTree turns a flat, parent-referencing category list into a
// forest. Roots and children keep the relative order of the input. Categories
// whose parent is not in the list are left out, and a node whose id already
// appears on its own ancestor path is returned without children.
func BuildCategoryTree(categories []types.Category) []*types.Category {
	byParent := make(map[string][]*types.Category, len(categories))
	roots := make([]*types.Category, 0)
	for i := range categories {
		c := &categories[i]
		if c.IsRoot() {
			roots = append(roots, c)
			continue
		}
		byParent[c.ParentId] = append(byParent[c.ParentId], c)
	}

	path := types.IdSet{}
	var build func(c *types.Category) *types.Category
	build = func(c *types.Category) *types.Category {
		node := c.Node()
		if path.Contains(c.Id) {
			return node
		}
		children := byParent[c.Id]
		if len(children) == 0 {
			return node
		}
		path.Add(c.Id)
		node.Children = make([]*types.Category, 0, len(children))
		for _, child := range children {
			node.Children = append(node.Children, build(child))
		}
		delete(path, c.Id)
		return node
	}

	ret := make([]*types.Category, 0, len(roots))
	for _, root := range roots {
		ret = append(ret, build(root))
	}
	return ret
}

// FlattenCategoryTree lists every node of the forest in pre-order.
func FlattenCategoryTree(tree []*types.Category) []*types.Category {
	ret := make([]*types.Category, 0, len(tree))
	stack := make([]*types.Category, 0, len(tree))
	for i := len(tree) - 1; i >= 0; i-- {
		stack = append(stack, tree[i])
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		ret = append(ret, node)
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return ret
}

// GetAllCategoryIds returns the id of the node and of every node below it.
func GetAllCategoryIds(node *types.Category) types.IdSet {
	ret := types.IdSet{}
	if node == nil {
		return ret
	}
	stack := []*types.Category{node}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr == nil || ret.Contains(curr.Id) {
			continue
		}
		ret.Add(curr.Id)
		stack = append(stack, curr.Children...)
	}
	return ret
}
