package utils

import "testing"

func TestIsProjectRootName(t *testing.T) {
	tests := []struct {
		segment string
		want    bool
	}{
		{"ABC_123", true},
		{"abc_xyz", true},
		{"AB_1234", false},
		{"ABCDEFG", false},
		{"ABC_1234", false},
		{"ABC_12", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsProjectRootName(tt.segment); got != tt.want {
			t.Errorf("IsProjectRootName(%q) = %v, want %v", tt.segment, got, tt.want)
		}
	}
}

func TestFindProjectRoot(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantRoot string
		wantOK   bool
	}{
		{
			name:     "direct child",
			path:     "/jobs/ABC_XYZ/maya",
			wantRoot: "/jobs/ABC_XYZ",
			wantOK:   true,
		},
		{
			name:     "deep descendant",
			path:     "/jobs/ABC_XYZ/maya/scenes/global",
			wantRoot: "/jobs/ABC_XYZ",
			wantOK:   true,
		},
		{
			name:     "nearest of two roots",
			path:     "/jobs/AAA_BBB/archive/CCC_DDD/maya",
			wantRoot: "/jobs/AAA_BBB/archive/CCC_DDD",
			wantOK:   true,
		},
		{
			name:     "windows drive",
			path:     "C:/jobs/ABC_XYZ/nuke",
			wantRoot: "C:/jobs/ABC_XYZ",
			wantOK:   true,
		},
		{
			name:   "no root",
			path:   "/jobs/misc/maya",
			wantOK: false,
		},
		{
			name:   "target itself is not its own root",
			path:   "/jobs/ABC_XYZ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, ok := FindProjectRoot(tt.path, IsProjectRootName)
			if ok != tt.wantOK || root != tt.wantRoot {
				t.Errorf("FindProjectRoot(%q) = (%q, %v), want (%q, %v)", tt.path, root, ok, tt.wantRoot, tt.wantOK)
			}
		})
	}
}

func TestFindProjectRootCustomMatcher(t *testing.T) {
	matcher := func(segment string) bool { return segment == "show" }
	root, ok := FindProjectRoot("/mnt/show/seq010/comp", matcher)
	if !ok || root != "/mnt/show" {
		t.Errorf("FindProjectRoot with custom matcher = (%q, %v)", root, ok)
	}
}

func TestIsWithin(t *testing.T) {
	if !IsWithin("/a/b/c", "/a/b") {
		t.Error("expected /a/b/c within /a/b")
	}
	if IsWithin("/a/bc", "/a/b") {
		t.Error("did not expect /a/bc within /a/b")
	}
	if !IsWithin("/a/b", "/a/b") {
		t.Error("expected path within itself")
	}
}
