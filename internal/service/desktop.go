package service

import (
	"context"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"vfxscaffold/internal/domain"
	"vfxscaffold/internal/domain/services"
	"vfxscaffold/internal/utils"

	"github.com/atotto/clipboard"
)

// ClipboardWriter places text on the system clipboard
type ClipboardWriter func(text string) error

// CommandStarter launches an external process without waiting for it
type CommandStarter func(name string, args ...string) error

type desktopService struct {
	writeClipboard ClipboardWriter
	start          CommandStarter
	goos           string
	logger         *slog.Logger
}

// NewDesktopService creates a desktop service backed by the system
// clipboard and the platform file manager
func NewDesktopService(logger *slog.Logger) services.DesktopService {
	return NewDesktopServiceWith(clipboard.WriteAll, startDetached, runtime.GOOS, logger)
}

// NewDesktopServiceWith creates a desktop service with explicit collaborators
func NewDesktopServiceWith(write ClipboardWriter, start CommandStarter, goos string, logger *slog.Logger) services.DesktopService {
	return &desktopService{
		writeClipboard: write,
		start:          start,
		goos:           goos,
		logger:         logger,
	}
}

// CopyToClipboard canonicalizes text before copying it
func (s *desktopService) CopyToClipboard(ctx context.Context, text string) error {
	path := utils.Canonicalize(text)
	if path == "" {
		return domain.NewValidationError("text is required")
	}

	if err := s.writeClipboard(path); err != nil {
		return domain.NewIOError("copy to clipboard", path, err)
	}

	s.logger.Debug("path copied to clipboard", "path", path)
	return nil
}

// OpenInExplorer reveals path in the platform file manager
func (s *desktopService) OpenInExplorer(ctx context.Context, path string) error {
	canonical := utils.Canonicalize(path)
	if canonical == "" {
		return domain.NewValidationError("path is required")
	}

	name, args := revealCommand(s.goos, canonical)
	if err := s.start(name, args...); err != nil {
		return domain.NewIOError("open in file manager", canonical, err)
	}

	s.logger.Debug("reveal requested", "path", canonical, "command", name)
	return nil
}

// revealCommand picks the file manager invocation for goos.
// Windows and macOS select the entry; elsewhere the parent is opened.
func revealCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{"/select," + strings.ReplaceAll(path, "/", "\\")}
	case "darwin":
		return "open", []string{"-R", path}
	default:
		parent := utils.ParentPath(path)
		if parent == "" {
			parent = path
		}
		return "xdg-open", []string{parent}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
