// Package cli implements the searxng-mcp command-line interface using Cobra.
// It stands in for an editor host: it resolves the node binary, server
// directory and settings file, and prints the resulting launch command.
package cli

import (
	"github.com/majorcontext/searxng-mcp/internal/config"
	"github.com/majorcontext/searxng-mcp/internal/log"
	"github.com/majorcontext/searxng-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	jsonOut bool

	// globalCfg is loaded before any subcommand runs.
	globalCfg *config.GlobalConfig
)

var rootCmd = &cobra.Command{
	Use:   "searxng-mcp",
	Short: "Validate settings and build the launch command for the SearXNG MCP server",
	Long: `searxng-mcp turns SearXNG MCP server settings into the command an MCP
host runs: the node binary, the mcp-searxng entry point and the environment
(SEARXNG_URL, AUTH_*, USER_AGENT, *_PROXY).

Settings are validated before use. Loopback and private-network instance
URLs, credentials embedded in URLs and unsafe header or proxy values are
rejected.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobal()
		if err != nil {
			return err
		}
		globalCfg = cfg

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      config.DebugDir(),
			RetentionDays: cfg.Debug.RetentionDays,
		}); err != nil {
			// Debug logging is optional; keep going with stderr only.
			ui.Warnf("failed to initialize debug logging: %v", err)
		}
		log.SetCommand(cmd.Name())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Close()
	},
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.Errorf("%v", err)
		log.Close()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}
