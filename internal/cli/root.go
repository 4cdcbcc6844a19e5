package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the sgfkit CLI and returns an error if any command fails.
//
// The root command wires up check, fmt and info, configures logging from
// the --verbose flag, and loads the TOML config file (--config overrides
// the default location). Logger and config travel through the command
// context, which is derived from ctx so signals cancel in-flight work.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          "sgfkit",
		Short:        "sgfkit validates, formats and inspects SGF game records",
		Long:         `sgfkit is a CLI for working with Smart Game Format (FF[4]) files: strict validation with precise errors, canonical reformatting, and quick game information.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sgfkit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/sgfkit/config.toml)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(ctx)
}
