package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"vfxscaffold/internal/app"
	"vfxscaffold/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// env carries what every subcommand needs. It is filled in by the root
// command's pre-run unless supplied up front.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *app.Services
}

// Execute runs the scaffold CLI
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the command tree with services created from the environment
func NewRoot() *cobra.Command {
	return newRoot(&env{})
}

func newRoot(e *env) *cobra.Command {
	var (
		verbose     bool
		templateDir string
	)

	root := &cobra.Command{
		Use:           "scaffold",
		Short:         "Create and maintain VFX project directory structures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e.svc != nil {
				return nil
			}
			_ = godotenv.Load()

			e.cfg = config.Load()
			if templateDir != "" {
				e.cfg.TemplateDir = templateDir
			}
			e.logger = newCLILogger(cmd.ErrOrStderr(), verbose)

			svc, err := app.NewServices(e.cfg, e.logger)
			if err != nil {
				return err
			}
			e.svc = svc
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log service activity to stderr")
	root.PersistentFlags().StringVar(&templateDir, "template-dir", "", "Template directory (overrides TEMPLATE_DIR)")

	root.AddCommand(
		createCmd(e),
		treeCmd(e),
		mkdirCmd(e),
		renameCmd(e),
		deleteCmd(e),
		templateCmd(e),
		copyPathCmd(e),
		revealCmd(e),
		serveCmd(e),
	)
	return root
}

func newCLILogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Main runs the CLI and maps failures to a styled message and exit code
func Main() int {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		return 1
	}
	return 0
}
