package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStructureService(t *testing.T) (services.StructureService, *layout.Registry) {
	t.Helper()
	layouts, err := layout.NewRegistry()
	require.NoError(t, err)
	templates, err := NewTemplateService("", 8, discardLogger())
	require.NoError(t, err)
	return NewStructureService(templates, layouts, discardLogger()), layouts
}

func ptr(s string) *string { return &s }

func TestCreateProjectStructureDefaultLayout(t *testing.T) {
	svc, layouts := newStructureService(t)
	base := t.TempDir()
	cfg := &models.ProjectConfig{ArtistRef: "abc", ProjectRef: "XYZ", BasePath: base}

	result, err := svc.CreateProjectStructure(context.Background(), cfg)
	require.NoError(t, err)

	projectDir := slashed(base) + "/ABC_XYZ"
	assert.Equal(t, projectDir, result.Path)
	assert.Contains(t, result.Message, projectDir)
	assert.Equal(t, 24, result.Directories)
	assert.Zero(t, result.Files)

	for _, dir := range layouts.Default() {
		assert.DirExists(t, filepath.Join(base, "ABC_XYZ", filepath.FromSlash(dir)))
	}

	var created []string
	err = filepath.WalkDir(filepath.Join(base, "ABC_XYZ"), func(p string, d os.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() && p != filepath.Join(base, "ABC_XYZ") {
			created = append(created, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, created, 24)

	// re-running with the same config succeeds
	again, err := svc.CreateProjectStructure(context.Background(), &models.ProjectConfig{ArtistRef: "ABC", ProjectRef: "XYZ", BasePath: base})
	require.NoError(t, err)
	assert.Equal(t, result.Path, again.Path)
}

func TestCreateProjectStructureValidation(t *testing.T) {
	svc, _ := newStructureService(t)
	base := t.TempDir()

	tests := []struct {
		name string
		cfg  *models.ProjectConfig
	}{
		{"nil config", nil},
		{"short artist ref", &models.ProjectConfig{ArtistRef: "AB", ProjectRef: "XYZ", BasePath: base}},
		{"long project ref", &models.ProjectConfig{ArtistRef: "ABC", ProjectRef: "XYZW", BasePath: base}},
		{"symbols in ref", &models.ProjectConfig{ArtistRef: "A_C", ProjectRef: "XYZ", BasePath: base}},
		{"missing base", &models.ProjectConfig{ArtistRef: "ABC", ProjectRef: "XYZ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProjectStructure(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateProjectStructureWithTemplate(t *testing.T) {
	svc, _ := newStructureService(t)
	base := t.TempDir()
	tmplDir := t.TempDir()

	writeFile(t, filepath.Join(tmplDir, "files", "workspace.mel"), "workspace -fr scene scenes;")
	writeFile(t, filepath.Join(tmplDir, "small.json"), `{
		"name": "Small",
		"description": "maya only",
		"directories": ["maya/scenes", "maya/scripts"],
		"baseFiles": [{"source": "files/workspace.mel", "destination": "maya/workspace.mel"}]
	}`)

	result, err := svc.CreateProjectStructure(context.Background(), &models.ProjectConfig{
		ArtistRef:    "ABC",
		ProjectRef:   "001",
		BasePath:     base,
		TemplatePath: ptr(filepath.Join(tmplDir, "small.json")),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Directories)
	assert.Equal(t, 1, result.Files)

	assert.DirExists(t, filepath.Join(base, "ABC_001", "maya", "scripts"))
	assert.NoDirExists(t, filepath.Join(base, "ABC_001", "nuke"))

	data, err := os.ReadFile(filepath.Join(base, "ABC_001", "maya", "workspace.mel"))
	require.NoError(t, err)
	assert.Equal(t, "workspace -fr scene scenes;", string(data))
}

func TestCreateProjectStructureOverwritesBaseFiles(t *testing.T) {
	svc, _ := newStructureService(t)
	base := t.TempDir()
	tmplDir := t.TempDir()

	writeFile(t, filepath.Join(tmplDir, "readme.txt"), "fresh")
	writeFile(t, filepath.Join(tmplDir, "t.yaml"), `
name: Readme
directories: [docs]
base_files:
  - source: readme.txt
    destination: docs/readme.txt
`)
	writeFile(t, filepath.Join(base, "ABC_XYZ", "docs", "readme.txt"), "stale content")

	_, err := svc.CreateProjectStructure(context.Background(), &models.ProjectConfig{
		ArtistRef: "ABC", ProjectRef: "XYZ", BasePath: base,
		TemplatePath: ptr(filepath.Join(tmplDir, "t.yaml")),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(base, "ABC_XYZ", "docs", "readme.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))

	entries, err := os.ReadDir(filepath.Join(base, "ABC_XYZ", "docs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestCreateProjectStructureMissingSource(t *testing.T) {
	svc, _ := newStructureService(t)
	base := t.TempDir()
	tmplDir := t.TempDir()

	writeFile(t, filepath.Join(tmplDir, "broken.json"), `{
		"name": "Broken",
		"directories": ["maya/scenes", "nuke"],
		"base_files": [{"source": "missing.nk", "destination": "nuke/comp.nk"}]
	}`)

	_, err := svc.CreateProjectStructure(context.Background(), &models.ProjectConfig{
		ArtistRef: "ABC", ProjectRef: "XYZ", BasePath: base,
		TemplatePath: ptr(filepath.Join(tmplDir, "broken.json")),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.nk")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// directories are not rolled back
	assert.DirExists(t, filepath.Join(base, "ABC_XYZ", "maya", "scenes"))
	assert.DirExists(t, filepath.Join(base, "ABC_XYZ", "nuke"))
	assert.NoFileExists(t, filepath.Join(base, "ABC_XYZ", "nuke", "comp.nk"))
}

func TestCreateProjectStructureBadTemplate(t *testing.T) {
	svc, _ := newStructureService(t)
	base := t.TempDir()
	tmplDir := t.TempDir()

	writeFile(t, filepath.Join(tmplDir, "bad.json"), `{"name": "Bad", "directories": [`)
	writeFile(t, filepath.Join(tmplDir, "escape.json"), `{"name": "Escape", "directories": ["../outside"]}`)

	_, err := svc.CreateProjectStructure(context.Background(), &models.ProjectConfig{
		ArtistRef: "ABC", ProjectRef: "XYZ", BasePath: base,
		TemplatePath: ptr(filepath.Join(tmplDir, "bad.json")),
	})
	assert.True(t, errors.Is(err, domain.ErrParse))

	_, err = svc.CreateProjectStructure(context.Background(), &models.ProjectConfig{
		ArtistRef: "ABC", ProjectRef: "XYZ", BasePath: base,
		TemplatePath: ptr(filepath.Join(tmplDir, "escape.json")),
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	assert.NoDirExists(t, filepath.Join(base, "ABC_XYZ"))
}

func TestCreateFolder(t *testing.T) {
	svc, _ := newStructureService(t)
	ctx := context.Background()
	base := t.TempDir()

	t.Run("with parents", func(t *testing.T) {
		path := slashed(base) + "/ABC_XYZ/maya/scenes/shot010"
		result, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Path: path, CreateParents: true})
		require.NoError(t, err)
		assert.Equal(t, "Directory created successfully at "+path, result.Message)
		assert.DirExists(t, filepath.FromSlash(path))
	})

	t.Run("missing parent without create_parents", func(t *testing.T) {
		path := slashed(base) + "/nope/child"
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Path: path})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoDirExists(t, filepath.FromSlash(path))
	})

	t.Run("existing folder without create_parents", func(t *testing.T) {
		mkdirs(t, base, "existing")
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Path: slashed(base) + "/existing"})
		require.Error(t, err)
		var httpErr domain.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, 409, httpErr.StatusCode())
	})

	t.Run("blank path", func(t *testing.T) {
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Path: "   "})
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
