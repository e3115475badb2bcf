package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/utils"
)

// folderService implements the FolderService interface
type folderService struct {
	isRoot utils.RootMatcher
	logger *slog.Logger
}

// NewFolderService creates a new folder service. A nil matcher selects
// utils.IsProjectRootName.
func NewFolderService(isRoot utils.RootMatcher, logger *slog.Logger) services.FolderService {
	if isRoot == nil {
		isRoot = utils.IsProjectRootName
	}
	return &folderService{
		isRoot: isRoot,
		logger: logger,
	}
}

// scope is a resolved mutation target
type scope struct {
	target     string   // cleaned target path
	targetName string   // final segment of target
	root       string   // enclosing project root
	matches    []string // directories named targetName under root, sorted pre-order
}

// RenameFolder renames every folder sharing oldPath's name inside its
// project root. Matches are renamed in collection order; the first
// failure stops the batch and earlier renames stay in place.
func (s *folderService) RenameFolder(ctx context.Context, req *services.RenameFolderRequest) (*models.MutationResult, error) {
	if err := validateRenameRequest(req); err != nil {
		return nil, err
	}

	target := utils.CleanPath(req.OldPath)
	targetName := utils.ExtractName(target)
	if err := s.checkNotRoot(targetName, "rename"); err != nil {
		return nil, err
	}
	if req.NewName == targetName {
		return nil, domain.NewValidationError("new name %q is the same as the current name", req.NewName)
	}
	if err := checkOnlySubdirectories(target); err != nil {
		return nil, err
	}

	sc, err := s.resolve(target, targetName)
	if err != nil {
		return nil, err
	}

	if req.ValidateFirst {
		for _, match := range sc.matches {
			if err := checkDestinationFree(renameDestination(match, req.NewName)); err != nil {
				return nil, err
			}
		}
	}

	pending := append([]string(nil), sc.matches...)
	affected := make([]string, 0, len(pending))
	for i, match := range pending {
		dest := renameDestination(match, req.NewName)
		if err := checkDestinationFree(dest); err != nil {
			return nil, err
		}
		if err := os.Rename(filepath.FromSlash(match), filepath.FromSlash(dest)); err != nil {
			return nil, domain.NewIOError("rename", match, err)
		}
		s.logger.Debug("folder renamed", "from", match, "to", dest)
		affected = append(affected, dest)

		// later matches nested inside this one moved with it
		for j := i + 1; j < len(pending); j++ {
			if utils.IsWithin(pending[j], match) {
				pending[j] = dest + strings.TrimPrefix(pending[j], match)
			}
		}
	}

	s.logger.Info("folder renamed",
		"root", sc.root,
		"target", sc.targetName,
		"new_name", req.NewName,
		"matches", len(affected),
	)

	return &models.MutationResult{
		Root:       sc.root,
		TargetName: sc.targetName,
		NewName:    req.NewName,
		Affected:   affected,
	}, nil
}

// DeleteFolder recursively removes every folder sharing path's name
// inside its project root. Matches nested in an already removed match
// are skipped.
func (s *folderService) DeleteFolder(ctx context.Context, req *services.DeleteFolderRequest) (*models.MutationResult, error) {
	if req == nil || strings.TrimSpace(req.Path) == "" {
		return nil, domain.NewValidationError("path is required")
	}

	target := utils.CleanPath(req.Path)
	targetName := utils.ExtractName(target)
	if err := s.checkNotRoot(targetName, "delete"); err != nil {
		return nil, err
	}
	info, err := os.Stat(filepath.FromSlash(target))
	if err != nil {
		return nil, domain.NewIOError("stat", target, err)
	}
	if !info.IsDir() {
		return nil, domain.NewValidationError("%s is not a folder", target)
	}

	sc, err := s.resolve(target, targetName)
	if err != nil {
		return nil, err
	}

	affected := make([]string, 0, len(sc.matches))
	for _, match := range sc.matches {
		if len(affected) > 0 && utils.IsWithin(match, affected[len(affected)-1]) {
			continue
		}
		if err := os.RemoveAll(filepath.FromSlash(match)); err != nil {
			return nil, domain.NewIOError("delete", match, err)
		}
		s.logger.Debug("folder deleted", "path", match)
		affected = append(affected, match)
	}

	s.logger.Info("folder deleted",
		"root", sc.root,
		"target", sc.targetName,
		"matches", len(affected),
	)

	return &models.MutationResult{
		Root:       sc.root,
		TargetName: sc.targetName,
		Affected:   affected,
	}, nil
}

func (s *folderService) checkNotRoot(name, op string) error {
	if name == "" {
		return domain.NewValidationError("path is required")
	}
	if s.isRoot(name) {
		return domain.NewValidationError("cannot %s project root folder %q", op, name)
	}
	return nil
}

// resolve finds the project root enclosing target and collects the
// matching directories below it
func (s *folderService) resolve(target, targetName string) (*scope, error) {
	root, ok := utils.FindProjectRoot(target, s.isRoot)
	if !ok {
		return nil, domain.NewValidationError("could not find project root for %s", target)
	}

	matches, err := collectMatches(root, targetName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("scoped matches collected",
		"root", root,
		"target", targetName,
		"matches", len(matches),
	)

	return &scope{
		target:     target,
		targetName: targetName,
		root:       root,
		matches:    matches,
	}, nil
}

// collectMatches walks root in lexical pre-order and returns every
// directory named name. Symlinked directories are not followed.
func collectMatches(root, name string) ([]string, error) {
	nativeRoot := filepath.FromSlash(root)
	var matches []string

	err := filepath.WalkDir(nativeRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return domain.NewIOError("read directory", filepath.ToSlash(p), err)
		}
		if p == nativeRoot || !d.IsDir() || d.Name() != name {
			return nil
		}
		rel, err := filepath.Rel(nativeRoot, p)
		if err != nil {
			return err
		}
		matches = append(matches, utils.JoinPath(root, filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		var ioErr *domain.IOError
		if errors.As(err, &ioErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to collect matches under %s: %w", root, err)
	}

	return matches, nil
}

// checkOnlySubdirectories refuses a rename target holding any file
func checkOnlySubdirectories(target string) error {
	entries, err := os.ReadDir(filepath.FromSlash(target))
	if err != nil {
		return domain.NewIOError("read directory", target, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			return domain.NewValidationError(
				"folder contains files and cannot be renamed: %s (found %s)", target, entry.Name())
		}
	}
	return nil
}

func checkDestinationFree(dest string) error {
	_, err := os.Lstat(filepath.FromSlash(dest))
	if err == nil {
		return &domain.ConflictError{
			Message: fmt.Sprintf("destination already exists: %s", dest),
			Path:    dest,
		}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return domain.NewIOError("stat", dest, err)
	}
	return nil
}

func renameDestination(match, newName string) string {
	return utils.JoinPath(utils.ParentPath(match), newName)
}
