package models

// DirectoryNode is one entry of a directory snapshot.
// Children are empty for files; directories sort before files, each
// group ordered by name.
type DirectoryNode struct {
	Name        string           `json:"name"`
	Path        string           `json:"path"`
	IsDirectory bool             `json:"is_directory"`
	Children    []*DirectoryNode `json:"children"`
}

// SnapshotOptions controls what a snapshot includes
type SnapshotOptions struct {
	// IncludeFiles adds files as leaf children. When false only
	// directories are walked and returned.
	IncludeFiles bool
}
