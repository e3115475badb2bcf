package services

import "context"

// DesktopService hands paths to the host desktop
type DesktopService interface {
	// CopyToClipboard places the canonical form of text on the clipboard
	CopyToClipboard(ctx context.Context, text string) error

	// OpenInExplorer reveals path in the platform file manager
	OpenInExplorer(ctx context.Context, path string) error
}
