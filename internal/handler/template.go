package handler

import (
	"log/slog"
	"net/http"

	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/httputil"
)

// TemplateHandler serves the template library
type TemplateHandler struct {
	templateService services.TemplateService
	logger          *slog.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService services.TemplateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// ListTemplates returns summaries of the configured template directory
// GET /api/templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.templateService.ListTemplates(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, summaries)
}

// ReadTemplate returns a parsed template
// GET /api/templates/read?path=
func (h *TemplateHandler) ReadTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.templateService.ReadTemplate(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tmpl)
}
