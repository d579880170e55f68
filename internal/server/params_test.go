package server

import (
	"strings"
	"testing"

	"github.com/agentdesk/macpilot/internal/automation"
	"github.com/agentdesk/macpilot/internal/model"
)

func TestRequireString(t *testing.T) {
	params := map[string]any{
		"application-identifier": "com.apple.Safari",
		"element-id":             42,
		"text":                   "",
	}

	got, err := requireString(params, "application-identifier")
	if err != nil {
		t.Fatal(err)
	}
	if got != "com.apple.Safari" {
		t.Errorf("got %q", got)
	}

	if _, err := requireString(params, "missing"); err == nil || !strings.Contains(err.Error(), "missing required parameter") {
		t.Errorf("expected missing-parameter error, got %v", err)
	}
	if _, err := requireString(params, "element-id"); err == nil || !strings.Contains(err.Error(), "must be a string") {
		t.Errorf("expected type error, got %v", err)
	}
	if _, err := requireString(params, "text"); err == nil || !strings.Contains(err.Error(), "must not be empty") {
		t.Errorf("expected empty-value error, got %v", err)
	}
}

func TestTreeJSON(t *testing.T) {
	if got := treeJSON(nil); got != "[]" {
		t.Errorf("nil tree = %q, want empty array", got)
	}

	tree := []model.Element{{
		ID:          "element_0",
		Description: "Save, (Button)",
		Children:    []model.Element{},
	}}
	got := treeJSON(tree)
	for _, want := range []string{`"element_id":"element_0"`, `"description":"Save, (Button)"`, `"children":[]`} {
		if !strings.Contains(got, want) {
			t.Errorf("treeJSON = %s, missing %s", got, want)
		}
	}
}

func TestActionText(t *testing.T) {
	got := actionText(&automation.ActionResult{
		Message: "Clicked element element_3 via press action.",
	})
	want := "Clicked element element_3 via press action.\n[]"
	if got != want {
		t.Errorf("actionText = %q, want %q", got, want)
	}
}
