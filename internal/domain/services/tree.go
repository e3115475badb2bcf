package services

import (
	"context"

	"vfxscaffold/internal/domain/models"
)

// TreeService defines operations for reading directory trees
type TreeService interface {
	// GetDirectoryStructure canonicalizes path and returns a snapshot rooted there
	GetDirectoryStructure(ctx context.Context, path string, opts models.SnapshotOptions) (*models.DirectoryNode, error)
}
