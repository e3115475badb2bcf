package models

// ProjectConfig describes a project structure to create under BasePath.
// The project directory is "{BasePath}/{ArtistRef}_{ProjectRef}".
type ProjectConfig struct {
	ProjectRef   string  `json:"project_ref"`
	ArtistRef    string  `json:"artist_ref"`
	BasePath     string  `json:"base_path"`
	TemplatePath *string `json:"template_path,omitempty"`
}

// StructureResult reports a created project structure
type StructureResult struct {
	Message     string `json:"message"`
	Path        string `json:"path"`
	Directories int    `json:"directories"`
	Files       int    `json:"files"`
}

// FolderResult reports a single created folder
type FolderResult struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}
