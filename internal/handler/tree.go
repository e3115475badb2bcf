package handler

import (
	"log/slog"
	"net/http"

	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/httputil"
)

// TreeHandler handles HTTP requests for tree operations
type TreeHandler struct {
	treeService services.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService services.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetTree returns the directory tree below ?path=.
// Files are included unless dirs_only=true.
// GET /api/tree
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.RespondError(w, http.StatusBadRequest, "path is required")
		return
	}

	dirsOnly, err := httputil.QueryBool(r, "dirs_only", false)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tree, err := h.treeService.GetDirectoryStructure(r.Context(), path, models.SnapshotOptions{IncludeFiles: !dirsOnly})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}
