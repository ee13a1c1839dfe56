package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nestmap/convert"
	"nestmap/deep"
)

var getPath string

var getCmd = &cobra.Command{
	Use:   "get <file>",
	Short: "Read the value at a path inside a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePath(getPath)
		if err != nil {
			return err
		}

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		v, ok, err := deep.Get(doc, p)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("no value at path %q", getPath)
		}

		rendered, err := convert.ToDoc(v)
		if err != nil {
			return err
		}

		return writeValue(cmd.OutOrStdout(), rendered)
	},
}

func init() {
	getCmd.Flags().StringVarP(&getPath, "path", "p", "", "Dotted path to read (required)")
	_ = getCmd.MarkFlagRequired("path")
}
