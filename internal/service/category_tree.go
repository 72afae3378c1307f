package service

import (
	"sort"

	"daily-app/internal/models"
)

// CategoryNode is one category with its children, for tree output.
type CategoryNode struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	ParentID *uint           `json:"parent_id"`
	Children []*CategoryNode `json:"children"`
}

// categoryTree indexes a flat category list by id and by parent.
type categoryTree struct {
	byID     map[uint]models.BillCategory
	children map[uint][]uint // 0 = 根节点
}

func newCategoryTree(cats []models.BillCategory) *categoryTree {
	t := &categoryTree{
		byID:     make(map[uint]models.BillCategory, len(cats)),
		children: make(map[uint][]uint),
	}
	for _, c := range cats {
		t.byID[c.ID] = c
	}
	for _, c := range cats {
		parent := uint(0)
		// 父节点不存在时当作根节点
		if c.ParentID != nil {
			if _, ok := t.byID[*c.ParentID]; ok {
				parent = *c.ParentID
			}
		}
		t.children[parent] = append(t.children[parent], c.ID)
	}
	for k := range t.children {
		ids := t.children[k]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return t
}

// descendants returns every id below id, not including id itself.
func (t *categoryTree) descendants(id uint) map[uint]bool {
	out := make(map[uint]bool)
	stack := append([]uint(nil), t.children[id]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if out[n] {
			continue
		}
		out[n] = true
		stack = append(stack, t.children[n]...)
	}
	return out
}

// wouldCycle reports whether making parent the parent of id creates a loop.
func (t *categoryTree) wouldCycle(id, parent uint) bool {
	if id == parent {
		return true
	}
	return t.descendants(id)[parent]
}

// roots builds the nested representation.
func (t *categoryTree) roots() []*CategoryNode {
	var build func(id uint, seen map[uint]bool) *CategoryNode
	build = func(id uint, seen map[uint]bool) *CategoryNode {
		c := t.byID[id]
		node := &CategoryNode{ID: c.ID, Name: c.Name, ParentID: c.ParentID, Children: []*CategoryNode{}}
		seen[id] = true
		for _, child := range t.children[id] {
			if !seen[child] {
				node.Children = append(node.Children, build(child, seen))
			}
		}
		return node
	}
	seen := make(map[uint]bool)
	out := make([]*CategoryNode, 0, len(t.children[0]))
	for _, id := range t.children[0] {
		out = append(out, build(id, seen))
	}
	return out
}
