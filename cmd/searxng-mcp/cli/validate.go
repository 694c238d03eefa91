package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/majorcontext/searxng-mcp/internal/config"
	"github.com/majorcontext/searxng-mcp/internal/log"
	"github.com/majorcontext/searxng-mcp/internal/settings"
	"github.com/majorcontext/searxng-mcp/internal/ui"
	"github.com/spf13/cobra"
)

// errInvalidSettings marks a failed validation that was already reported.
var errInvalidSettings = errors.New("settings are invalid")

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check a settings file against the security policy",
	Long: `Validate a settings file without building a command.

FILE defaults to the server.settings path from ~/.searxng-mcp/config.yaml.
Exits non-zero if the file is missing or any field is rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validationResult is the --json output of validate.
type validationResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := globalCfg.Server.Settings
	if len(args) == 1 {
		path = args[0]
	}

	raw, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("no settings found in %s", path)
	}

	result := validationResult{File: path, Valid: true}
	if _, err := settings.Parse(raw); err != nil {
		result.Valid = false
		result.Error = err.Error()
		var verr *settings.ValidationError
		if errors.As(err, &verr) {
			result.Field = verr.Field
			result.Kind = verr.Kind.Error()
		}
		log.Debug("settings rejected", "file", path, "field", result.Field, "kind", result.Kind)
	}

	w := cmd.OutOrStdout()
	if jsonOut {
		if err := json.NewEncoder(w).Encode(result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(w, "%s %s is valid\n", ui.OKTag(), path)
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.FailTag(), result.Error)
	}

	if !result.Valid {
		return errInvalidSettings
	}
	return nil
}
