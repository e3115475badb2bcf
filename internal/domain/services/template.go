package services

import (
	"context"

	"vfxscaffold/internal/domain/models"
)

// TemplateService loads project templates
type TemplateService interface {
	// ReadTemplate reads and validates a JSON or YAML template file
	ReadTemplate(ctx context.Context, path string) (*models.ProjectTemplate, error)

	// ListTemplates summarizes the templates found in the template directory
	ListTemplates(ctx context.Context) ([]models.TemplateSummary, error)
}
