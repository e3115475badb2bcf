package services

import (
	"context"

	"vfxscaffold/internal/domain/models"
)

// FolderService applies scoped mutations: a rename or delete of one
// folder is applied to every folder sharing its name inside the
// enclosing project root.
type FolderService interface {
	// RenameFolder renames every folder named like oldPath's final segment
	// within its project root to newName
	RenameFolder(ctx context.Context, req *RenameFolderRequest) (*models.MutationResult, error)

	// DeleteFolder recursively removes every folder named like path's final
	// segment within its project root
	DeleteFolder(ctx context.Context, req *DeleteFolderRequest) (*models.MutationResult, error)
}

// RenameFolderRequest represents a scoped rename request
type RenameFolderRequest struct {
	OldPath       string `json:"old_path"`
	NewName       string `json:"new_name"`
	ValidateFirst bool   `json:"validate_first,omitempty"`
}

// DeleteFolderRequest represents a scoped delete request
type DeleteFolderRequest struct {
	Path string `json:"path"`
}
