package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func templateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect project templates",
	}
	cmd.AddCommand(templateShowCmd(e), templateListCmd(e))
	return cmd
}

func templateShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Validate a template and print it as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := e.svc.Templates.ReadTemplate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(tmpl)
			if err != nil {
				return fmt.Errorf("failed to encode template: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func templateListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates in the template directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := e.svc.Templates.ListTemplates(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No templates found"))
			}
			for _, s := range summaries {
				fmt.Fprintf(out, "%s  %s %s\n",
					pathStyle.Render(s.File),
					s.Name,
					mutedStyle.Render(fmt.Sprintf("(%d dirs, %d files)", s.DirectoryCount, s.FileCount)),
				)
			}
			if e.svc.Layouts != nil {
				fmt.Fprintln(out, mutedStyle.Render("Built-in layouts: "+strings.Join(e.svc.Layouts.Names(), ", ")))
			}
			return nil
		},
	}
}
