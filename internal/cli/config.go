package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RickCogley/nagare-sub001/internal/errors"
)

// addConfigCommand adds the config command group to the root command.
func addConfigCommand(root *cobra.Command, env *environment) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect nagare configuration",
	}

	flags := &projectFlags{}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging defaults,
~/.nagare/config.yaml, .nagare/config.yaml, and NAGARE_* environment variables.

Output is YAML by default and JSON with --output json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), env, flags.Dir)
		},
	}
	showCmd.Flags().StringVarP(&flags.Dir, "dir", "C", ".", "project directory")

	configCmd.AddCommand(showCmd)
	root.AddCommand(configCmd)
}

func runConfigShow(ctx context.Context, out io.Writer, env *environment, dir string) error {
	p, err := loadProject(ctx, dir, nil)
	if err != nil {
		return err
	}

	if env.flags.Output == OutputJSON {
		return writeJSON(out, p.cfg)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(p.cfg); err != nil {
		return errors.Wrap(err, "encode configuration")
	}
	return encoder.Close()
}
