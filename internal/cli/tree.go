package cli

import (
	"io"

	"vfxscaffold/internal/domain/models"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"
)

func treeCmd(e *env) *cobra.Command {
	var dirsOnly bool

	cmd := &cobra.Command{
		Use:   "tree <path>",
		Short: "Print the directory tree below a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := e.svc.Tree.GetDirectoryStructure(cmd.Context(), args[0], models.SnapshotOptions{IncludeFiles: !dirsOnly})
			if err != nil {
				return err
			}
			return renderTree(cmd.OutOrStdout(), node)
		},
	}

	cmd.Flags().BoolVarP(&dirsOnly, "dirs-only", "d", false, "Omit files")
	return cmd
}

// renderTree prints a snapshot. Directories carry a trailing slash.
func renderTree(w io.Writer, node *models.DirectoryNode) error {
	root := gtree.NewRoot(node.Path)
	addChildren(root, node)
	return gtree.OutputProgrammably(w, root)
}

func addChildren(parent *gtree.Node, node *models.DirectoryNode) {
	for _, child := range node.Children {
		label := child.Name
		if child.IsDirectory {
			label += "/"
		}
		addChildren(parent.Add(label), child)
	}
}
