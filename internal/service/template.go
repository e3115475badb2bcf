package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vfxscaffold/internal/config"
	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"
)

// templateKey invalidates a cached template whenever its file changes
type templateKey struct {
	path    string
	size    int64
	modTime int64
}

type templateService struct {
	dir    string
	cache  *lru.Cache[templateKey, *models.ProjectTemplate]
	logger *slog.Logger
}

// NewTemplateService creates a template service reading relative paths
// from dir (may be empty) and caching up to cacheSize parsed templates
func NewTemplateService(dir string, cacheSize int, logger *slog.Logger) (services.TemplateService, error) {
	if cacheSize <= 0 {
		cacheSize = config.DefaultTemplateCacheSize
	}
	cache, err := lru.New[templateKey, *models.ProjectTemplate](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}

	return &templateService{
		dir:    dir,
		cache:  cache,
		logger: logger,
	}, nil
}

// ReadTemplate reads a template file. Files ending in .yaml/.yml are
// decoded as YAML, everything else as JSON.
func (s *templateService) ReadTemplate(ctx context.Context, path string) (*models.ProjectTemplate, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.NewValidationError("template path is required")
	}

	resolved, err := s.resolvePath(path)
	if err != nil {
		return nil, domain.NewIOError("resolve template", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, domain.NewIOError("read template", path, err)
	}
	if info.IsDir() {
		return nil, domain.NewValidationError("template path %s is a directory", path)
	}

	key := templateKey{path: resolved, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("template cache hit", "path", resolved)
		return cloneTemplate(cached), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, domain.NewIOError("read template", path, err)
	}

	tmpl, err := decodeTemplate(resolved, data)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	if err := validateTemplate(tmpl); err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", path, err)
	}
	tmpl.SourcePath = resolved

	s.cache.Add(key, tmpl)

	s.logger.Info("template loaded",
		"path", resolved,
		"name", tmpl.Name,
		"directories", len(tmpl.Directories),
		"base_files", len(tmpl.BaseFiles),
	)

	return cloneTemplate(tmpl), nil
}

// ListTemplates summarizes every readable template in the template directory
func (s *templateService) ListTemplates(ctx context.Context) ([]models.TemplateSummary, error) {
	summaries := make([]models.TemplateSummary, 0)
	if s.dir == "" {
		return summaries, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, domain.NewIOError("read template directory", s.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}

		tmpl, err := s.ReadTemplate(ctx, filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable template", "file", entry.Name(), "error", err)
			continue
		}

		summaries = append(summaries, models.TemplateSummary{
			File:           entry.Name(),
			Name:           tmpl.Name,
			Description:    tmpl.Description,
			DirectoryCount: len(tmpl.Directories),
			FileCount:      len(tmpl.BaseFiles),
		})
	}

	return summaries, nil
}

// resolvePath makes path absolute. Relative paths are looked up in the
// template directory when one is configured.
func (s *templateService) resolvePath(path string) (string, error) {
	native := filepath.FromSlash(strings.ReplaceAll(path, "\\", "/"))
	if !filepath.IsAbs(native) && s.dir != "" {
		native = filepath.Join(s.dir, native)
	}
	return filepath.Abs(native)
}

func decodeTemplate(path string, data []byte) (*models.ProjectTemplate, error) {
	var tmpl models.ProjectTemplate

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &tmpl); err != nil {
			return nil, err
		}
	}

	return &tmpl, nil
}

func isTemplateFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func cloneTemplate(t *models.ProjectTemplate) *models.ProjectTemplate {
	c := *t
	c.Directories = append([]string(nil), t.Directories...)
	c.BaseFiles = append([]models.BaseFile(nil), t.BaseFiles...)
	return &c
}
