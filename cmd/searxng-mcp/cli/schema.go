package cli

import (
	"fmt"

	"github.com/majorcontext/searxng-mcp/internal/settings"
	"github.com/spf13/cobra"
)

var (
	schemaDefaults     bool
	schemaInstructions bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the settings JSON schema, defaults or setup instructions",
	Long: `Print static content for MCP hosts that render a settings UI.

By default the JSON schema of the settings record is printed. Use --defaults
for the starter settings template or --instructions for the setup guide.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch {
		case schemaDefaults:
			fmt.Fprint(w, settings.DefaultSettings())
		case schemaInstructions:
			fmt.Fprint(w, settings.InstallationInstructions())
		default:
			data, err := settings.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(data))
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaDefaults, "defaults", false, "print the default settings template")
	schemaCmd.Flags().BoolVar(&schemaInstructions, "instructions", false, "print installation instructions")
	schemaCmd.MarkFlagsMutuallyExclusive("defaults", "instructions")
	rootCmd.AddCommand(schemaCmd)
}
