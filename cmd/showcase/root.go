package main

import (
	"fmt"
	"log/slog"

	"github.com/angristan/homeshowcase/internal/api"
	"github.com/angristan/homeshowcase/internal/config"
	"github.com/angristan/homeshowcase/internal/logging"
	"github.com/angristan/homeshowcase/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		demo     bool
		server   string
		logFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse a property listing and its photos in the terminal",
		Long: `showcase opens the listing page of a HomeShowCase server: the property
details, its rooms, a full-screen photo gallery and a viewing request form.

Without a configured server it searches the local network first.`,
		Example: `  # Connect to the last used server, or discover one
  showcase

  # Connect to a specific server
  showcase --server 192.168.1.20:8000

  # Try it without a server
  showcase --demo`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg.ApplyEnv()

			if cmd.Flags().Changed("demo") {
				cfg.Demo = demo
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Log.File = logFile
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			// The UI owns the terminal, so logs go to a file or nowhere
			closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer closer.Close()

			var client api.ListingClient
			switch {
			case cfg.Demo:
				slog.Info("demo mode enabled")
				client = api.NewDemoClient()
			case server != "":
				client = api.NewClient(server)
			}

			model := tui.NewModel(cfg, client)
			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running app: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in sample listing instead of a server")
	cmd.Flags().StringVar(&server, "server", "", "listing server address, e.g. 192.168.1.20:8000")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newServeCmd())

	return cmd
}
