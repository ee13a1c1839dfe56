package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"nestmap/convert"
	"nestmap/deep"
)

var (
	setPath       string
	setValue      string
	setAccumulate bool
)

var setCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Write a value at a path and print the new document",
	Long: `Write a value at a dotted path. The value is parsed as JSON when
possible ('2' is a number, '"2"' and 'two' are strings), so scalars,
objects, and arrays all work. With --accumulate the target cell grows a
newest-first list instead of being replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePath(setPath)
		if err != nil {
			return err
		}

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		mode := deep.ModeOverwrite
		if setAccumulate {
			mode = deep.ModeAccumulate
		}

		out, err := deep.Put(doc, p, parseValue(setValue), mode)
		if err != nil {
			return err
		}

		return writeDocument(cmd.OutOrStdout(), out)
	},
}

// parseValue interprets a flag value as JSON when it parses, so numbers
// and structured literals survive; anything else is a plain string.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	return convert.FromDoc(v)
}

func init() {
	setCmd.Flags().StringVarP(&setPath, "path", "p", "", "Dotted path to write (required)")
	setCmd.Flags().StringVarP(&setValue, "value", "v", "", "Value to write (required)")
	setCmd.Flags().BoolVar(&setAccumulate, "accumulate", false, "Prepend to a list at the path instead of replacing")
	_ = setCmd.MarkFlagRequired("path")
	_ = setCmd.MarkFlagRequired("value")
}
