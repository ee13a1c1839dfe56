package cli

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

// rootCmd is the root command for nestmap.
var rootCmd = &cobra.Command{
	Use:     "nestmap",
	Version: "dev",
	Short:   "Deep path operations over JSON/YAML documents",
	Long: `nestmap reads, writes, deletes, and groups values inside nested
documents. Paths are dotted key sequences ("a.b.c"); every segment is a
string key, so "group.1" addresses the "1" branch of a reloaded group
tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(groupCmd)
}
