package handler

import (
	"log/slog"
	"net/http"

	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/httputil"
)

// DesktopHandler forwards clipboard and reveal requests to the host
type DesktopHandler struct {
	desktopService services.DesktopService
	logger         *slog.Logger
}

// NewDesktopHandler creates a new desktop handler
func NewDesktopHandler(desktopService services.DesktopService, logger *slog.Logger) *DesktopHandler {
	return &DesktopHandler{
		desktopService: desktopService,
		logger:         logger,
	}
}

type clipboardRequest struct {
	Text string `json:"text"`
}

type revealRequest struct {
	Path string `json:"path"`
}

// CopyToClipboard places a cleaned path on the clipboard
// POST /api/clipboard
func (h *DesktopHandler) CopyToClipboard(w http.ResponseWriter, r *http.Request) {
	var req clipboardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.desktopService.CopyToClipboard(r.Context(), req.Text); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// Reveal opens the platform file manager at path
// POST /api/reveal
func (h *DesktopHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req revealRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.desktopService.OpenInExplorer(r.Context(), req.Path); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
