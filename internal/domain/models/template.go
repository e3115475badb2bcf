package models

import "encoding/json"

// ProjectTemplate is a custom directory layout plus files to seed into
// a new project. Loaded from JSON or YAML.
type ProjectTemplate struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Directories []string   `json:"directories" yaml:"directories"`
	BaseFiles   []BaseFile `json:"base_files" yaml:"base_files"`

	// SourcePath is the absolute file the template was read from; relative
	// base file sources resolve against its directory
	SourcePath string `json:"-" yaml:"-"`
}

// BaseFile copies Source to Destination (relative to the project directory)
type BaseFile struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// UnmarshalJSON accepts both "base_files" and the camelCase "baseFiles".
func (t *ProjectTemplate) UnmarshalJSON(data []byte) error {
	type plain ProjectTemplate
	var raw struct {
		plain
		BaseFilesCamel []BaseFile `json:"baseFiles"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = ProjectTemplate(raw.plain)
	if len(t.BaseFiles) == 0 && len(raw.BaseFilesCamel) > 0 {
		t.BaseFiles = raw.BaseFilesCamel
	}
	return nil
}

// TemplateSummary is a template library listing entry
type TemplateSummary struct {
	File           string `json:"file"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DirectoryCount int    `json:"directory_count"`
	FileCount      int    `json:"file_count"`
}
