package cli

import (
	"bufio"
	"fmt"
	"strings"

	"vfxscaffold/internal/domain/models"
	"vfxscaffold/internal/domain/services"

	"github.com/spf13/cobra"
)

func createCmd(e *env) *cobra.Command {
	var (
		artist   string
		project  string
		base     string
		template string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project structure under a base path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &models.ProjectConfig{
				ArtistRef:  artist,
				ProjectRef: project,
				BasePath:   base,
			}
			if template != "" {
				cfg.TemplatePath = &template
			}

			result, err := e.svc.Structure.CreateProjectStructure(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(result.Message))
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(
				fmt.Sprintf("%d directories, %d files", result.Directories, result.Files)))
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Artist reference (3 letters or digits)")
	cmd.Flags().StringVar(&project, "project", "", "Project reference (3 letters or digits)")
	cmd.Flags().StringVar(&base, "base", "", "Base directory the project is created in")
	cmd.Flags().StringVar(&template, "template", "", "Template file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func mkdirCmd(e *env) *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a single folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := e.svc.Structure.CreateFolder(cmd.Context(), &services.CreateFolderRequest{
				Path:          args[0],
				CreateParents: parents,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(result.Message))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing parent folders")
	return cmd
}

func renameCmd(e *env) *cobra.Command {
	var validateFirst bool

	cmd := &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: "Rename a folder and every same-named folder in its project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := e.svc.Folders.RenameFolder(cmd.Context(), &services.RenameFolderRequest{
				OldPath:       args[0],
				NewName:       args[1],
				ValidateFirst: validateFirst,
			})
			if err != nil {
				return err
			}
			printMutation(cmd, fmt.Sprintf("Renamed %q to %q", result.TargetName, result.NewName), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&validateFirst, "validate-first", false, "Check every destination before renaming anything")
	return cmd
}

func deleteCmd(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a folder and every same-named folder in its project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, fmt.Sprintf("Delete every folder named like %s in its project?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Aborted"))
				return nil
			}

			result, err := e.svc.Folders.DeleteFolder(cmd.Context(), &services.DeleteFolderRequest{Path: args[0]})
			if err != nil {
				return err
			}
			printMutation(cmd, fmt.Sprintf("Deleted %q", result.TargetName), result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func copyPathCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "copy-path <path>",
		Short: "Copy a cleaned path to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.svc.Desktop.CopyToClipboard(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Copied to clipboard"))
			return nil
		},
	}
}

func revealCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a path in the platform file manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.svc.Desktop.OpenInExplorer(cmd.Context(), args[0])
		},
	}
}

func printMutation(cmd *cobra.Command, headline string, result *models.MutationResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, successStyle.Render(headline), mutedStyle.Render(fmt.Sprintf("(%d folders in %s)", len(result.Affected), result.Root)))
	for _, p := range result.Affected {
		fmt.Fprintln(out, "  "+pathStyle.Render(p))
	}
}

func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
