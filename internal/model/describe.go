package model

import "strings"

// NodeText holds the raw accessibility attributes that feed into a node's
// description.
type NodeText struct {
	Role        string
	Title       string
	Value       string
	Help        string
	Description string
}

// Describe synthesizes the human-readable description for an element.
//
// The output is deterministic and order-sensitive: title, then value (when
// different from the title), then any harvested descendant text, then the
// role name with its AX prefix stripped and wrapped in parentheses, then a
// trailing help or description attribute when distinct from the title.
func Describe(text NodeText, harvested []string) string {
	var segs []string
	if text.Title != "" {
		segs = append(segs, text.Title)
	}
	if text.Value != "" && text.Value != text.Title {
		segs = append(segs, text.Value)
	}
	for _, h := range harvested {
		if h != "" {
			segs = append(segs, h)
		}
	}
	segs = append(segs, "("+ShortRole(text.Role)+")")

	out := strings.Join(segs, ", ")

	if text.Help != "" && text.Help != text.Title {
		out += " - " + text.Help
	} else if text.Description != "" && text.Description != text.Title {
		out += " - " + text.Description
	}
	return out
}
