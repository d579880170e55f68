package model

// Element is a node in the simplified UI tree returned to agents.
//
// IDs are issued by the session registry and are only valid until the next
// full scan of any application. Children are in document order from the
// native accessibility tree.
type Element struct {
	ID          string    `json:"element_id"  yaml:"element_id"`
	Description string    `json:"description" yaml:"description"`
	Children    []Element `json:"children"    yaml:"children"`
}

// FindByID searches the element tree recursively for an element with the given ID.
func FindByID(elements []Element, id string) *Element {
	for i := range elements {
		if elements[i].ID == id {
			return &elements[i]
		}
		if found := FindByID(elements[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// CollectIDs returns every element ID in the tree in depth-first order.
func CollectIDs(elements []Element) []string {
	var ids []string
	for _, el := range elements {
		ids = append(ids, el.ID)
		ids = append(ids, CollectIDs(el.Children)...)
	}
	return ids
}

// MaxDepth returns the depth of the deepest element, with top-level
// elements at depth 0. Returns -1 for an empty tree.
func MaxDepth(elements []Element) int {
	deepest := -1
	for _, el := range elements {
		d := 0
		if child := MaxDepth(el.Children); child >= 0 {
			d = child + 1
		}
		if d > deepest {
			deepest = d
		}
	}
	return deepest
}
