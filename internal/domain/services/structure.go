package services

import (
	"context"

	"vfxscaffold/internal/domain/models"
)

// StructureService materializes directory layouts on disk
type StructureService interface {
	// CreateProjectStructure creates "{base}/{artist}_{project}" and its
	// layout from the default table or a template
	CreateProjectStructure(ctx context.Context, cfg *models.ProjectConfig) (*models.StructureResult, error)

	// CreateFolder creates a single folder, optionally with missing parents
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.FolderResult, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Path          string `json:"path"`
	CreateParents bool   `json:"create_parents"`
}
