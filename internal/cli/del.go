package cli

import (
	"github.com/spf13/cobra"

	"nestmap/deep"
)

var delPath string

var delCmd = &cobra.Command{
	Use:   "del <file>",
	Short: "Delete the value at a path and print the new document",
	Long: `Delete the cell named by the last path segment. Deleting an absent
key is a no-op; a parent path that does not lead to an object is an
error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePath(delPath)
		if err != nil {
			return err
		}

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		out, err := deep.Delete(doc, p)
		if err != nil {
			return err
		}

		return writeDocument(cmd.OutOrStdout(), out)
	},
}

func init() {
	delCmd.Flags().StringVarP(&delPath, "path", "p", "", "Dotted path to delete (required)")
	_ = delCmd.MarkFlagRequired("path")
}
