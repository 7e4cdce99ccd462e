package ast

import "testing"

func TestTableMatchesGeneratedTags(t *testing.T) {
	if len(NodeDefs) != NumTags {
		t.Fatalf("NodeDefs has %d entries, generated NumTags = %d; rerun genschema", len(NodeDefs), NumTags)
	}
	if len(tagNames) != NumTags {
		t.Fatalf("tagNames has %d entries, want %d; rerun genschema", len(tagNames), NumTags)
	}
	for i, d := range NodeDefs {
		if tagNames[i] != d.Name {
			t.Errorf("tag %d: generated name %q, table name %q; rerun genschema", i, tagNames[i], d.Name)
		}
		if got, ok := TagByName[d.Name]; !ok || got != Tag(i) {
			t.Errorf("TagByName[%q] = %d, want %d", d.Name, got, i)
		}
	}
}

func TestTableShape(t *testing.T) {
	if len(NodeDefs) > 256 {
		t.Fatalf("%d tags do not fit the one-byte tag field", len(NodeDefs))
	}
	for i, d := range NodeDefs {
		if d.HasInlined && !d.HasVarint {
			t.Errorf("%s: inline data requires a varint length", d.Name)
		}
		if d.NumSkips > 3 {
			t.Errorf("%s: %d skips, no tag defines more than 3", d.Name, d.NumSkips)
		}
		if d.Name == "" {
			t.Errorf("tag %d has no name", i)
		}
	}
}

func TestKnownShapes(t *testing.T) {
	tests := []struct {
		tag      Tag
		skips    int
		subtrees int
		inlined  bool
	}{
		{TagScript, 2, 0, false},
		{TagVar, 2, 0, false},
		{TagVarDecl, 0, 1, true},
		{TagIf, 2, 1, false},
		{TagFunc, 3, 1, false},
		{TagNum, 0, 0, true},
		{TagFor, 2, 3, false},
		{TagTry, 3, 1, false},
		{TagSwitch, 2, 1, false},
		{TagMember, 0, 1, true},
		{TagCall, 1, 1, false},
		{TagUseStrict, 0, 0, false},
	}
	for _, tt := range tests {
		d := tt.tag.Def()
		if d.NumSkips != tt.skips || d.NumSubtrees != tt.subtrees || d.HasInlined != tt.inlined {
			t.Errorf("%s = (%d skips, %d subtrees, inlined=%v), want (%d, %d, %v)",
				tt.tag, d.NumSkips, d.NumSubtrees, d.HasInlined, tt.skips, tt.subtrees, tt.inlined)
		}
	}
}

func TestTagString(t *testing.T) {
	if got := TagIf.String(); got != "IF" {
		t.Errorf("TagIf.String() = %q, want IF", got)
	}
	if got := Tag(200).String(); got != "TAG_200" {
		t.Errorf("Tag(200).String() = %q, want TAG_200", got)
	}
}
