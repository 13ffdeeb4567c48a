package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"genie-relay/backend/internal/app"
	"genie-relay/backend/internal/config"
	"genie-relay/backend/internal/service"
)

var (
	debug     bool
	transport string
)

var rootCmd = &cobra.Command{
	Use:           "geniectl",
	Short:         "Talk to a Databricks Genie space from the terminal",
	Long:          "geniectl uses the same configuration as the relay server (.env, environment, Databricks CLI profile) and prints JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&transport, "transport", "", "Override GENIE_TRANSPORT (rest, sdk, mock)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newService loads configuration and builds the Genie service. Logs go to stderr
// so stdout stays valid JSON.
func newService(stderr io.Writer) (*service.GenieService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if transport != "" {
		cfg.Transport = strings.ToLower(transport)
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return app.NewGenieService(cfg, logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
