package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionResult is the JSON document printed by version.
type versionResult struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func addVersionCommand(root *cobra.Command, env *environment) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env.flags.Output == OutputJSON {
				info := env.info
				return writeJSON(cmd.OutOrStdout(), versionResult{Version: info.Version, Commit: info.Commit, Date: info.Date})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nagare %s\n", formatVersion(env.info))
			return err
		},
	})
}
