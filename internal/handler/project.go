package handler

import (
	"log/slog"
	"net/http"

	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/httputil"
)

// ProjectHandler handles project scaffolding requests
type ProjectHandler struct {
	structureService services.StructureService
	logger           *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(structureService services.StructureService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		structureService: structureService,
		logger:           logger,
	}
}

// CreateProject scaffolds a project directory
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var cfg models.ProjectConfig
	if !decodeBody(w, r, &cfg) {
		return
	}

	result, err := h.structureService.CreateProjectStructure(r.Context(), &cfg)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}
