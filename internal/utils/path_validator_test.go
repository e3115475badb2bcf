package utils

import (
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "only separators", raw: "///", want: ""},
		{name: "unix path", raw: "/mnt/jobs/ABC_123", want: "/mnt/jobs/ABC_123"},
		{name: "trailing slash", raw: "/mnt/jobs/", want: "/mnt/jobs"},
		{name: "double slashes", raw: "/mnt//jobs///ABC_123", want: "/mnt/jobs/ABC_123"},
		{name: "relative gets leading slash", raw: "mnt/jobs", want: "/mnt/jobs"},
		{name: "duplicate segments", raw: "/a/b/b/c", want: "/a/b/c"},
		{name: "triple duplicates", raw: "/jobs/maya/maya/maya/scenes", want: "/jobs/maya/scenes"},
		{name: "non-consecutive duplicates kept", raw: "/maya/scenes/maya", want: "/maya/scenes/maya"},
		{name: "backslashes", raw: `C:\Projects\ABC_XYZ\maya`, want: "C:/Projects/ABC_XYZ/maya"},
		{name: "drive with extra colons", raw: "C:::/Projects", want: "C:/Projects"},
		{name: "drive only", raw: `D:\`, want: "D:"},
		{name: "mixed separators", raw: `C:/Projects\maya\maya/scenes/`, want: "C:/Projects/maya/scenes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.raw)
			if got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"/",
		"/a/b/b/c",
		`C:\\Projects\\ABC_XYZ\\\\maya\\maya`,
		"C:::/x/x/y/",
		"relative/path/path",
		"/::/weird",
		"C:/C:/nested",
	}

	for _, in := range inputs {
		once := Canonicalize(in)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCanonicalizeCollapsesDuplicates(t *testing.T) {
	if Canonicalize("/a/b/b/c") != Canonicalize("/a/b/c") {
		t.Errorf("expected /a/b/b/c and /a/b/c to canonicalize identically")
	}
}

func TestCanonicalizeBareDriveLetter(t *testing.T) {
	prev := windowsDrives
	windowsDrives = true
	defer func() { windowsDrives = prev }()

	if got := Canonicalize(`C\Projects`); got != "C:/Projects" {
		t.Errorf("Canonicalize with bare drive = %q, want %q", got, "C:/Projects")
	}
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "rooted", raw: "/jobs/ABC_123/maya/maya/scenes/", want: "/jobs/ABC_123/maya/scenes"},
		{name: "relative stays relative", raw: "jobs/ABC_123//maya", want: "jobs/ABC_123/maya"},
		{name: "windows drive", raw: `E::\jobs\ABC_123`, want: "E:/jobs/ABC_123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanPath(tt.raw); got != tt.want {
				t.Errorf("CleanPath(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractNameAndParent(t *testing.T) {
	if got := ExtractName("/jobs/ABC_123/maya/"); got != "maya" {
		t.Errorf("ExtractName = %q, want maya", got)
	}
	if got := ParentPath("/jobs/ABC_123/maya"); got != "/jobs/ABC_123" {
		t.Errorf("ParentPath = %q, want /jobs/ABC_123", got)
	}
	if got := ParentPath("/jobs"); got != "/" {
		t.Errorf("ParentPath(/jobs) = %q, want /", got)
	}
	if got := ParentPath("jobs"); got != "" {
		t.Errorf("ParentPath(jobs) = %q, want empty", got)
	}
}

func TestValidateFolderName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: "shots", wantErr: false},
		{name: "with space", input: "Time Editor", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dotdot", input: "..", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFolderName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFolderName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRelativePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "nested", input: "maya/scenes/global", wantErr: false},
		{name: "backslashes", input: `maya\scenes`, wantErr: false},
		{name: "absolute", input: "/etc/passwd", wantErr: true},
		{name: "drive", input: "C:/Windows", wantErr: true},
		{name: "parent escape", input: "maya/../../x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelativePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
