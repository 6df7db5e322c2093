// Package category derives category trees from flat parent-linked records and
// validates structural changes before they reach storage.
package category

import (
	"sort"
	"strings"

	apperrors "github.com/chekout/admin/internal/platform/errors"
)

// Category is a flat category record as stored.
type Category struct {
	ID        string
	Name      string
	Slug      string
	ParentID  string // empty for root categories
	SortOrder int
	IsActive  bool
}

// Node is a category with its resolved children, ordered by sort order.
type Node struct {
	Category
	Depth    int
	Children []*Node
}

// BuildTree filters a flat category list into a tree by parent-id linkage.
// Children are ordered by SortOrder, then name for stable ties. Records whose
// parent is missing from the input are treated as roots so a single bad row
// cannot hide a whole subtree.
func BuildTree(categories []Category) []*Node {
	byID := make(map[string]*Node, len(categories))
	for _, c := range categories {
		byID[c.ID] = &Node{Category: c}
	}

	var roots []*Node
	for _, c := range categories {
		node := byID[c.ID]
		if c.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := byID[c.ParentID]
		if !ok || c.ParentID == c.ID {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortNodes(roots)
	for _, root := range roots {
		assignDepth(root, 0)
	}
	return roots
}

// Flatten walks a tree depth-first, returning rows in display order.
func Flatten(roots []*Node) []*Node {
	var out []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		out = append(out, node)
		for _, child := range node.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return out
}

// ValidateMove checks that moving categoryID under newParentID keeps the
// structure acyclic. Moving a category onto itself or onto any of its
// descendants is rejected. An empty newParentID (move to root) always passes.
func ValidateMove(categories []Category, categoryID, newParentID string) error {
	categoryID = strings.TrimSpace(categoryID)
	newParentID = strings.TrimSpace(newParentID)
	if newParentID == "" {
		return nil
	}
	if newParentID == categoryID {
		return apperrors.New(apperrors.CodeCategoryCycle, "category cannot be its own parent")
	}

	parentOf := make(map[string]string, len(categories))
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		parentOf[c.ID] = c.ParentID
		known[c.ID] = true
	}
	if !known[newParentID] {
		return apperrors.New(apperrors.CodeCategoryUnknownParent, "parent category does not exist")
	}

	// Walk up from the proposed parent; hitting categoryID means the target
	// is a descendant. The hop cap guards against corrupted stored links.
	current := newParentID
	for hops := 0; hops < len(categories)+1; hops++ {
		if current == "" {
			return nil
		}
		if current == categoryID {
			return apperrors.New(apperrors.CodeCategoryCycle, "move target is a descendant")
		}
		current = parentOf[current]
	}
	return apperrors.New(apperrors.CodeCategoryCycle, "parent chain does not terminate")
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].Name < nodes[j].Name
	})
	for _, node := range nodes {
		sortNodes(node.Children)
	}
}

func assignDepth(node *Node, depth int) {
	node.Depth = depth
	for _, child := range node.Children {
		assignDepth(child, depth+1)
	}
}
