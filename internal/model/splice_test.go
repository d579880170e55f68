package model

import "testing"

func sampleTree() []Element {
	return []Element{
		{ID: "element_0", Description: "(Window)", Children: []Element{
			{ID: "element_1", Description: "Save, (Button)", Children: []Element{}},
			{ID: "element_2", Description: "Files, (Row)", Children: []Element{
				{ID: "element_3", Description: "main.go, (Cell)", Children: []Element{}},
			}},
		}},
	}
}

func TestSplice_ReplacesNestedNode(t *testing.T) {
	replacement := []Element{
		{ID: "element_10", Description: "Files, (Row)", Children: []Element{
			{ID: "element_11", Description: "main.go, (Cell)", Children: []Element{}},
			{ID: "element_12", Description: "go.mod, (Cell)", Children: []Element{}},
		}},
	}
	tree, n := Splice(sampleTree(), "element_2", replacement)
	if n != 1 {
		t.Fatalf("expected 1 replacement, got %d", n)
	}
	if FindByID(tree, "element_2") != nil {
		t.Error("old node should be gone")
	}
	if FindByID(tree, "element_10") == nil || FindByID(tree, "element_12") == nil {
		t.Error("replacement nodes not found in tree")
	}
	// Sibling order preserved: button still precedes the replaced row.
	children := tree[0].Children
	if len(children) != 2 || children[0].ID != "element_1" || children[1].ID != "element_10" {
		t.Errorf("unexpected children after splice: %+v", children)
	}
}

func TestSplice_NoMatch(t *testing.T) {
	tree, n := Splice(sampleTree(), "element_99", nil)
	if n != 0 {
		t.Errorf("expected 0 replacements, got %d", n)
	}
	if len(CollectIDs(tree)) != 4 {
		t.Errorf("tree should be unchanged, got IDs %v", CollectIDs(tree))
	}
}

func TestSplice_EmptyReplacementRemovesNode(t *testing.T) {
	tree, n := Splice(sampleTree(), "element_1", nil)
	if n != 1 {
		t.Fatalf("expected 1 replacement, got %d", n)
	}
	if FindByID(tree, "element_1") != nil {
		t.Error("node should have been removed")
	}
}

func TestFindByID(t *testing.T) {
	tree := sampleTree()
	if el := FindByID(tree, "element_3"); el == nil || el.Description != "main.go, (Cell)" {
		t.Errorf("unexpected result: %+v", el)
	}
	if el := FindByID(tree, "element_42"); el != nil {
		t.Errorf("expected nil for unknown ID, got %+v", el)
	}
}

func TestCollectIDs_DepthFirstOrder(t *testing.T) {
	ids := CollectIDs(sampleTree())
	want := []string{"element_0", "element_1", "element_2", "element_3"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d IDs, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestMaxDepth(t *testing.T) {
	if d := MaxDepth(nil); d != -1 {
		t.Errorf("empty tree depth = %d, want -1", d)
	}
	if d := MaxDepth(sampleTree()); d != 2 {
		t.Errorf("depth = %d, want 2", d)
	}
}
