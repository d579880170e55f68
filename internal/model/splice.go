package model

// Splice replaces the element whose ID equals target with the given
// replacement sequence, wherever it occurs in the tree, and returns the
// number of replacements made. Sibling order around the spliced-in nodes is
// preserved.
//
// IDs are unique within one acquisition pass, so a single replacement is the
// normal case; every occurrence is replaced regardless.
func Splice(elements []Element, target string, replacement []Element) ([]Element, int) {
	var out []Element
	replaced := 0
	for _, el := range elements {
		if el.ID == target {
			out = append(out, replacement...)
			replaced++
			continue
		}
		children, n := Splice(el.Children, target, replacement)
		el.Children = children
		replaced += n
		out = append(out, el)
	}
	return out, replaced
}
