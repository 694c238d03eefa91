package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/majorcontext/searxng-mcp/internal/config"
	"github.com/majorcontext/searxng-mcp/internal/launch"
	"github.com/majorcontext/searxng-mcp/internal/log"
	"github.com/majorcontext/searxng-mcp/internal/ui"
	"github.com/spf13/cobra"
)

var (
	commandSettings string
	commandNode     string
	commandDir      string
)

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Print the command that launches the SearXNG MCP server",
	Long: `Print the command an MCP host should run to start the SearXNG server.

Settings are read from --settings, $SEARXNG_MCP_SETTINGS or the server.settings
path in ~/.searxng-mcp/config.yaml. JSON, YAML and TOML files are accepted,
either as a bare settings record or nested under
context_servers.mcp-server-searxng.settings.

If no settings exist yet the command is printed without environment so the
host can still start and prompt for configuration.

Output is JSON when --json is given or stdout is not a terminal. The human
readable form masks AUTH_PASSWORD.`,
	Example: `  searxng-mcp command --settings ~/.config/zed/settings.json
  searxng-mcp command --node /usr/local/bin/node --dir ~/.searxng-mcp/server --json`,
	Args: cobra.NoArgs,
	RunE: runCommand,
}

func init() {
	commandCmd.Flags().StringVar(&commandSettings, "settings", "", "settings file (default from config)")
	commandCmd.Flags().StringVar(&commandNode, "node", "", "node binary (default: node on PATH)")
	commandCmd.Flags().StringVar(&commandDir, "dir", "", "directory mcp-searxng is installed under")
	rootCmd.AddCommand(commandCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg := *globalCfg
	if commandNode != "" {
		cfg.Node.Binary = commandNode
	}
	if commandDir != "" {
		cfg.Server.Dir = commandDir
	}

	host := config.NewHost(&cfg)
	host.SettingsPath = commandSettings

	d, err := launch.ForHost(host)
	if err != nil {
		return err
	}
	if len(d.Env) == 0 {
		log.Debug("no settings configured", "settings", settingsPath(&cfg))
		ui.Warnf("no settings found; the server will start unconfigured. Run 'searxng-mcp schema --defaults' for a template.")
	}

	return printDescriptor(cmd.OutOrStdout(), d, jsonOut || !ui.IsTerminal())
}

func settingsPath(cfg *config.GlobalConfig) string {
	if commandSettings != "" {
		return commandSettings
	}
	return cfg.Server.Settings
}

func printDescriptor(w io.Writer, d *launch.Descriptor, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	r := d.Redacted()
	fmt.Fprintf(w, "%s %s\n", ui.Bold("Command:"), r.Executable)
	for _, a := range r.Args {
		fmt.Fprintf(w, "%s %s\n", ui.Bold("Arg:    "), a)
	}
	if len(r.Env) == 0 {
		fmt.Fprintf(w, "%s %s\n", ui.Bold("Env:    "), ui.Dim("(none)"))
		return nil
	}
	fmt.Fprintln(w, ui.Bold("Env:"))
	for _, e := range r.Env {
		fmt.Fprintf(w, "  %s=%s\n", e.Name, e.Value)
	}
	return nil
}
