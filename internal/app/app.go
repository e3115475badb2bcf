package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vfxscaffold/internal/auth"
	"vfxscaffold/internal/config"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/handler"
	"vfxscaffold/internal/layout"
	"vfxscaffold/internal/middleware"
	"vfxscaffold/internal/service"

	"github.com/rs/cors"
)

// Services bundles the service layer shared by the HTTP API and the CLI
type Services struct {
	Layouts   *layout.Registry
	Structure services.StructureService
	Templates services.TemplateService
	Tree      services.TreeService
	Folders   services.FolderService
	Desktop   services.DesktopService
}

// NewServices wires the service layer from configuration
func NewServices(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	layouts, err := layout.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize layout registry: %w", err)
	}

	templates, err := service.NewTemplateService(cfg.TemplateDir, cfg.TemplateCacheSize, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Layouts:   layouts,
		Structure: service.NewStructureService(templates, layouts, logger),
		Templates: templates,
		Tree:      service.NewTreeService(logger),
		Folders:   service.NewFolderService(nil, logger),
		Desktop:   service.NewDesktopService(logger),
	}, nil
}

// NewRouter registers every route on a fresh ServeMux
func NewRouter(svc *Services, logger *slog.Logger) *http.ServeMux {
	projectHandler := handler.NewProjectHandler(svc.Structure, logger)
	folderHandler := handler.NewFolderHandler(svc.Structure, svc.Folders, logger)
	treeHandler := handler.NewTreeHandler(svc.Tree, logger)
	templateHandler := handler.NewTemplateHandler(svc.Templates, logger)
	desktopHandler := handler.NewDesktopHandler(svc.Desktop, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)

	mux.HandleFunc("GET /api/templates", templateHandler.ListTemplates)
	mux.HandleFunc("GET /api/templates/read", templateHandler.ReadTemplate)

	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)

	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("POST /api/folders/rename", folderHandler.RenameFolder)
	mux.HandleFunc("POST /api/folders/delete", folderHandler.DeleteFolder)

	mux.HandleFunc("POST /api/clipboard", desktopHandler.CopyToClipboard)
	mux.HandleFunc("POST /api/reveal", desktopHandler.Reveal)

	return mux
}

// NewHandler builds the middleware chain around the router.
// Order: CORS → RequestLogger → Recovery → Auth → Routes
func NewHandler(cfg *config.Config, svc *Services, verifier auth.JWTVerifier, logger *slog.Logger) http.Handler {
	var h http.Handler = NewRouter(svc, logger)

	h = middleware.AuthMiddleware(verifier, "/health")(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS must run before auth so OPTIONS pre-flight requests pass
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	return corsHandler.Handler(h)
}

// NewServer assembles the HTTP server. The returned cleanup releases the
// token verifier.
func NewServer(cfg *config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	svc, err := NewServices(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var verifier auth.JWTVerifier
	if cfg.AuthJWKSURL != "" {
		verifier, err = auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn("authentication disabled: AUTH_JWKS_URL is not set")
	}

	cleanup := func() {
		if verifier != nil {
			verifier.Close()
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewHandler(cfg, svc, verifier, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, cleanup, nil
}
