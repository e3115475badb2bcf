package service

import (
	"fmt"
	"regexp"
	"strings"

	"vfxscaffold/internal/config"
	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var refPattern = regexp.MustCompile(fmt.Sprintf(`^[A-Za-z0-9]{%d}$`, config.RefLength))

// validateProjectConfig trims and checks a project config in place.
// Refs are upper-cased so the generated root always fits the root pattern.
func validateProjectConfig(cfg *models.ProjectConfig) error {
	if cfg == nil {
		return domain.NewValidationError("project config is required")
	}

	cfg.ArtistRef = strings.ToUpper(strings.TrimSpace(cfg.ArtistRef))
	cfg.ProjectRef = strings.ToUpper(strings.TrimSpace(cfg.ProjectRef))
	cfg.BasePath = strings.TrimSpace(cfg.BasePath)

	refRule := validation.Match(refPattern).
		Error(fmt.Sprintf("must be exactly %d letters or digits", config.RefLength))

	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.ArtistRef, validation.Required, refRule),
		validation.Field(&cfg.ProjectRef, validation.Required, refRule),
		validation.Field(&cfg.BasePath, validation.Required),
	)
	return asValidationError(err)
}

func validateCreateFolderRequest(req *services.CreateFolderRequest) error {
	if req == nil {
		return domain.NewValidationError("request is required")
	}
	req.Path = strings.TrimSpace(req.Path)

	err := validation.ValidateStruct(req,
		validation.Field(&req.Path, validation.Required, validation.Length(1, utils.MaxPathLength)),
	)
	return asValidationError(err)
}

func validateRenameRequest(req *services.RenameFolderRequest) error {
	if req == nil {
		return domain.NewValidationError("request is required")
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.OldPath, validation.Required),
		validation.Field(&req.NewName,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			validation.By(folderNameRule),
		),
	)
	return asValidationError(err)
}

func validateTemplate(t *models.ProjectTemplate) error {
	err := validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Directories, validation.Each(validation.By(relativePathRule))),
		validation.Field(&t.BaseFiles, validation.Each(validation.By(baseFileRule))),
	)
	return asValidationError(err)
}

func folderNameRule(value interface{}) error {
	name, _ := value.(string)
	return utils.ValidateFolderName(name)
}

func relativePathRule(value interface{}) error {
	path, _ := value.(string)
	return utils.ValidateRelativePath(path)
}

func baseFileRule(value interface{}) error {
	file, ok := value.(models.BaseFile)
	if !ok {
		return fmt.Errorf("invalid base file entry")
	}
	if strings.TrimSpace(file.Source) == "" {
		return fmt.Errorf("source cannot be blank")
	}
	if err := utils.ValidateRelativePath(file.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return nil
}

// asValidationError converts ozzo errors into the domain ValidationError
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &domain.ValidationError{Message: err.Error()}
}
