package models

// Department is a node in the static organizational tree. Selection state
// lives in the editor; only the selected ids are embedded into
// Assistant.PublishedDepartments.
type Department struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Children []Department `json:"children,omitempty"`
}

// FlatDepartment is a department paired with its tree depth, for rendering
// the tree as an indented list.
type FlatDepartment struct {
	Department
	Depth int
}

// FlattenDepartments walks the tree depth-first in declaration order.
func FlattenDepartments(tree []Department) []FlatDepartment {
	var out []FlatDepartment
	var walk func(nodes []Department, depth int)
	walk = func(nodes []Department, depth int) {
		for _, n := range nodes {
			out = append(out, FlatDepartment{Department: n, Depth: depth})
			walk(n.Children, depth+1)
		}
	}
	walk(tree, 0)
	return out
}

// FindDepartment looks up a department id anywhere in the tree.
func FindDepartment(tree []Department, id string) *Department {
	for i := range tree {
		if tree[i].ID == id {
			return &tree[i]
		}
		if d := FindDepartment(tree[i].Children, id); d != nil {
			return d
		}
	}
	return nil
}
