package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/utils"
)

// treeService implements the TreeService interface
type treeService struct {
	logger *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(logger *slog.Logger) services.TreeService {
	return &treeService{
		logger: logger,
	}
}

// GetDirectoryStructure canonicalizes path and snapshots the tree below it
func (s *treeService) GetDirectoryStructure(ctx context.Context, path string, opts models.SnapshotOptions) (*models.DirectoryNode, error) {
	root := utils.Canonicalize(path)
	if root == "" {
		return nil, domain.NewValidationError("path is required")
	}

	node, err := Snapshot(root, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory structure: %w", err)
	}

	s.logger.Debug("directory structure read",
		"path", root,
		"include_files", opts.IncludeFiles,
		"children", len(node.Children),
	)

	return node, nil
}

// Snapshot walks root recursively and returns an ordered tree.
// Directories are descended into; files appear as leaf children only when
// opts.IncludeFiles is set. A directory that resolves to one already on
// the current descent path (a symlink cycle) is returned without children.
func Snapshot(root string, opts models.SnapshotOptions) (*models.DirectoryNode, error) {
	w := &snapshotWalker{
		includeFiles: opts.IncludeFiles,
		active:       make(map[string]struct{}),
	}
	return w.walk(root)
}

type snapshotWalker struct {
	includeFiles bool
	active       map[string]struct{} // resolved directories on the current descent path
}

func (w *snapshotWalker) walk(path string) (*models.DirectoryNode, error) {
	native := filepath.FromSlash(path)

	info, err := os.Stat(native)
	if err != nil {
		return nil, domain.NewIOError("read", path, err)
	}

	node := &models.DirectoryNode{
		Name:        utils.ExtractName(path),
		Path:        path,
		IsDirectory: info.IsDir(),
		Children:    []*models.DirectoryNode{},
	}
	if !info.IsDir() {
		return node, nil
	}

	identity := resolveIdentity(native)
	if _, seen := w.active[identity]; seen {
		return node, nil
	}
	w.active[identity] = struct{}{}
	defer delete(w.active, identity)

	entries, err := os.ReadDir(native)
	if err != nil {
		return nil, domain.NewIOError("read directory", path, err)
	}

	for _, entry := range entries {
		childPath := utils.JoinPath(path, entry.Name())

		if isDirEntry(filepath.Join(native, entry.Name()), entry) {
			child, err := w.walk(childPath)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
			continue
		}

		if w.includeFiles {
			node.Children = append(node.Children, &models.DirectoryNode{
				Name:        entry.Name(),
				Path:        childPath,
				IsDirectory: false,
				Children:    []*models.DirectoryNode{},
			})
		}
	}

	sortNodes(node.Children)
	return node, nil
}

// sortNodes orders directories before files, each group by name (byte-wise)
func sortNodes(nodes []*models.DirectoryNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].IsDirectory != nodes[j].IsDirectory {
			return nodes[i].IsDirectory
		}
		return nodes[i].Name < nodes[j].Name
	})
}

// isDirEntry reports whether entry is a directory, following symlinks.
// Broken links count as files.
func isDirEntry(native string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(native)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func resolveIdentity(native string) string {
	resolved, err := filepath.EvalSymlinks(native)
	if err != nil {
		return native
	}
	if abs, err := filepath.Abs(resolved); err == nil {
		return abs
	}
	return resolved
}
