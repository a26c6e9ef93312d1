package cmd

import (
	"github.com/rpgo/wealth-planner/internal/server"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner as a JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	addr := flagAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)
	return server.New(newEngine(cmd), st, logger).ListenAndServe(addr)
}
