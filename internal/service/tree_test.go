package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(node *models.DirectoryNode) []string {
	names := make([]string, 0, len(node.Children))
	for _, c := range node.Children {
		names = append(names, c.Name)
	}
	return names
}

func TestSnapshotOrdering(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "b", "a")
	writeFile(t, filepath.Join(root, "z"), "z")
	writeFile(t, filepath.Join(root, "y"), "y")

	tests := []struct {
		name         string
		includeFiles bool
		want         []string
	}{
		{"directories only", false, []string{"a", "b"}},
		{"with files", true, []string{"a", "b", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Snapshot(slashed(root), models.SnapshotOptions{IncludeFiles: tt.includeFiles})
			require.NoError(t, err)
			assert.True(t, node.IsDirectory)
			assert.Equal(t, tt.want, childNames(node))
		})
	}
}

func TestSnapshotNestedPaths(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "maya/scenes/global")
	writeFile(t, filepath.Join(root, "maya", "workspace.mel"), "")

	node, err := Snapshot(slashed(root), models.SnapshotOptions{IncludeFiles: true})
	require.NoError(t, err)

	require.Len(t, node.Children, 1)
	maya := node.Children[0]
	assert.Equal(t, slashed(root)+"/maya", maya.Path)
	assert.Equal(t, []string{"scenes", "workspace.mel"}, childNames(maya))

	file := maya.Children[1]
	assert.False(t, file.IsDirectory)
	assert.Empty(t, file.Children)
	assert.Equal(t, "global", maya.Children[0].Children[0].Name)
}

func TestSnapshotCaseSensitiveOrder(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "maya", "Plates", "adobe", "Deliveries")

	node, err := Snapshot(slashed(root), models.SnapshotOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Deliveries", "Plates", "adobe", "maya"}, childNames(node))
}

func TestSnapshotLeafRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	writeFile(t, file, "hi")

	node, err := Snapshot(slashed(file), models.SnapshotOptions{IncludeFiles: true})
	require.NoError(t, err)
	assert.False(t, node.IsDirectory)
	assert.Equal(t, "notes.txt", node.Name)
	assert.Empty(t, node.Children)
}

func TestSnapshotSymlinkCycle(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a")
	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	node, err := Snapshot(slashed(root), models.SnapshotOptions{})
	require.NoError(t, err)

	require.Len(t, node.Children, 1)
	a := node.Children[0]
	require.Len(t, a.Children, 1)
	loop := a.Children[0]
	assert.Equal(t, "loop", loop.Name)
	assert.True(t, loop.IsDirectory)
	assert.Empty(t, loop.Children)
}

func TestGetDirectoryStructure(t *testing.T) {
	svc := NewTreeService(discardLogger())
	ctx := context.Background()

	t.Run("canonicalizes input", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "maya")

		node, err := svc.GetDirectoryStructure(ctx, slashed(root)+"//maya/maya/", models.SnapshotOptions{})
		require.NoError(t, err)
		assert.Equal(t, slashed(root)+"/maya", node.Path)
		assert.Equal(t, "maya", node.Name)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := svc.GetDirectoryStructure(ctx, filepath.Join(t.TempDir(), "missing"), models.SnapshotOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.True(t, errors.Is(err, domain.ErrIO))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := svc.GetDirectoryStructure(ctx, "//", models.SnapshotOptions{})
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
