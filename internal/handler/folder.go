package handler

import (
	"log/slog"
	"net/http"

	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	structureService services.StructureService
	folderService    services.FolderService
	logger           *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(structureService services.StructureService, folderService services.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		structureService: structureService,
		folderService:    folderService,
		logger:           logger,
	}
}

// CreateFolder creates a single folder
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.structureService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}

// RenameFolder renames a folder and every same-named folder in its project
// POST /api/folders/rename
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	var req services.RenameFolderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.folderService.RenameFolder(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("scoped rename",
		"caller", httputil.GetCallerID(r),
		"request_id", httputil.GetRequestID(r),
		"root", result.Root,
		"affected", len(result.Affected),
	)

	httputil.RespondJSON(w, http.StatusOK, result)
}

// DeleteFolder deletes a folder and every same-named folder in its project
// POST /api/folders/delete
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	var req services.DeleteFolderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.folderService.DeleteFolder(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("scoped delete",
		"caller", httputil.GetCallerID(r),
		"request_id", httputil.GetRequestID(r),
		"root", result.Root,
		"affected", len(result.Affected),
	)

	httputil.RespondJSON(w, http.StatusOK, result)
}
