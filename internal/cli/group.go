package cli

import (
	"github.com/spf13/cobra"

	"nestmap/deep"
)

var groupFields string

var groupCmd = &cobra.Command{
	Use:   "group <file>",
	Short: "Group an array of records into a nested tree",
	Long: `Group records by the values of one or more fields, in order. The
result is a tree one level deep per field, with a list of matching
records at each leaf, newest-first. Every record must carry every
grouping field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseFields(groupFields)
		if err != nil {
			return err
		}

		records, err := loadRecords(args[0])
		if err != nil {
			return err
		}

		tree, err := deep.GroupBy(records, fields)
		if err != nil {
			return err
		}

		return writeDocument(cmd.OutOrStdout(), tree)
	},
}

func init() {
	groupCmd.Flags().StringVarP(&groupFields, "fields", "f", "", "Comma-separated grouping fields (required)")
	_ = groupCmd.MarkFlagRequired("fields")
}
