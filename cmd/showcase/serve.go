package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/angristan/homeshowcase/internal/logging"
	"github.com/angristan/homeshowcase/internal/server"
	"github.com/angristan/homeshowcase/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		dbPath    string
		assetsDir string
		seed      bool
		advertise bool
		name      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the listing API, image assets and metrics",
		Long: `Starts the HomeShowCase listing server.

The listing is stored in SQLite. On an empty database the sample listing is
seeded unless --seed=false is given. Images are served from --assets under
/assets/, and the server announces itself over mDNS so terminal clients on
the same network can find it.`,
		Example: `  # Serve on the default port
  showcase serve

  # Serve a persistent database and local photos
  showcase serve --db listing.db --assets ./photos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := os.Getenv("LOG_LEVEL")
			if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
				level = f.Value.String()
			}
			logging.SetupStderr(level)

			ctx := cmd.Context()

			st, err := store.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if seed {
				if _, err := st.Seed(ctx); err != nil {
					return fmt.Errorf("seeding database: %w", err)
				}
			}

			if advertise {
				if adv, err := advertiseListing(cmd, st, addr, name); err != nil {
					slog.Warn("mDNS advertisement disabled", "error", err)
				} else {
					defer adv.Shutdown()
				}
			}

			srv := server.New(st, server.Options{AssetsDir: assetsDir})
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "homeshowcase.db", "SQLite database path (:memory: for a throwaway one)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory served under /assets/")
	cmd.Flags().BoolVar(&seed, "seed", true, "seed the sample listing into an empty database")
	cmd.Flags().BoolVar(&advertise, "advertise", true, "announce the server over mDNS")
	cmd.Flags().StringVar(&name, "name", "", "mDNS instance name (defaults to the hostname)")

	return cmd
}

// advertiseListing announces the server with the listing's address in the
// TXT record
func advertiseListing(cmd *cobra.Command, st *store.Store, addr, name string) (*server.Advertiser, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("parsing listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("parsing port %q: %w", portStr, err)
	}

	address := ""
	if p, err := st.GetDefaultProperty(cmd.Context()); err == nil {
		address = p.Address
	}

	return server.Advertise(name, port, address)
}
