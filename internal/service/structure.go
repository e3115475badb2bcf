package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/layout"
	"vfxscaffold/internal/utils"
)

// structureService implements the StructureService interface
type structureService struct {
	templates services.TemplateService
	layouts   *layout.Registry
	logger    *slog.Logger
}

// NewStructureService creates a new structure service
func NewStructureService(
	templates services.TemplateService,
	layouts *layout.Registry,
	logger *slog.Logger,
) services.StructureService {
	return &structureService{
		templates: templates,
		layouts:   layouts,
		logger:    logger,
	}
}

// CreateProjectStructure creates the project directory and its layout.
// A template (when given) is fully loaded before anything is created.
// Directories are created in order and the first failure aborts, leaving
// earlier directories in place. Base files are copied after all
// directories exist.
func (s *structureService) CreateProjectStructure(ctx context.Context, cfg *models.ProjectConfig) (*models.StructureResult, error) {
	if err := validateProjectConfig(cfg); err != nil {
		return nil, err
	}

	base := utils.Canonicalize(cfg.BasePath)
	projectDir := utils.JoinPath(base, utils.ProjectDirName(cfg.ArtistRef, cfg.ProjectRef))

	var tmpl *models.ProjectTemplate
	if cfg.TemplatePath != nil && strings.TrimSpace(*cfg.TemplatePath) != "" {
		var err error
		tmpl, err = s.templates.ReadTemplate(ctx, *cfg.TemplatePath)
		if err != nil {
			return nil, err
		}
	}

	directories := s.layouts.Default()
	if tmpl != nil {
		directories = tmpl.Directories
	}

	if err := mkdirAll(projectDir); err != nil {
		return nil, err
	}
	for _, dir := range directories {
		target := utils.JoinPath(projectDir, strings.ReplaceAll(dir, "\\", "/"))
		if err := mkdirAll(target); err != nil {
			return nil, err
		}
		s.logger.Debug("directory created", "path", target)
	}

	files := 0
	if tmpl != nil {
		templateDir := filepath.Dir(tmpl.SourcePath)
		for _, bf := range tmpl.BaseFiles {
			src := resolveSource(bf.Source, templateDir)
			dst := filepath.Join(filepath.FromSlash(projectDir), filepath.FromSlash(strings.ReplaceAll(bf.Destination, "\\", "/")))

			if err := copyFile(src, dst); err != nil {
				return nil, fmt.Errorf("failed to copy file from %s to %s: %w", src, dst, err)
			}
			files++
			s.logger.Debug("base file copied", "source", src, "destination", dst)
		}
	}

	s.logger.Info("project structure created",
		"path", projectDir,
		"directories", len(directories),
		"files", files,
		"template", tmpl != nil,
	)

	return &models.StructureResult{
		Message:     fmt.Sprintf("Project structure created at %s", projectDir),
		Path:        projectDir,
		Directories: len(directories),
		Files:       files,
	}, nil
}

// CreateFolder creates a single folder. Without CreateParents it fails
// when the parent is missing or the folder already exists.
func (s *structureService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.FolderResult, error) {
	if err := validateCreateFolderRequest(req); err != nil {
		return nil, err
	}

	path := utils.Canonicalize(req.Path)

	var err error
	if req.CreateParents {
		err = mkdirAll(path)
	} else {
		err = domain.NewIOError("create directory", path, os.Mkdir(filepath.FromSlash(path), 0o755))
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "path", path, "create_parents", req.CreateParents)

	return &models.FolderResult{
		Message: fmt.Sprintf("Directory created successfully at %s", path),
		Path:    path,
	}, nil
}

func mkdirAll(path string) error {
	return domain.NewIOError("create directory", path, os.MkdirAll(filepath.FromSlash(path), 0o755))
}

// resolveSource makes a base file source native and, when relative,
// anchors it at the template's directory
func resolveSource(source, templateDir string) string {
	native := filepath.FromSlash(strings.ReplaceAll(source, "\\", "/"))
	if filepath.IsAbs(native) || templateDir == "" || templateDir == "." {
		return native
	}
	return filepath.Join(templateDir, native)
}

// copyFile copies src over dst through a temp file in dst's directory,
// so a failed copy never leaves a truncated destination.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("source %s is a directory", src)
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return err
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
