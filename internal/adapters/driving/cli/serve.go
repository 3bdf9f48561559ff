package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

var (
	servePort  int
	serveHost  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API.

Routes:
  GET  /                         usage
  GET  /health                   service status
  GET  /families                 family identifiers
  GET  /family/{id}              parsed alignment (?features=false, ?strict=true)
  GET  /family/{id}/raw          alignment text as stored
  POST /parse                    parse the request body

The port defaults to server.port (PORT in the environment, 5000 otherwise).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from configuration)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen address (default from configuration)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "invalidate cached alignments when the source changes")
	rootCmd.AddCommand(serveCmd)
}

// serveAddr combines flags and settings into a listen address.
func serveAddr(settings domain.ServerSettings) string {
	host, port := settings.Host, settings.Port
	if serveHost != "" {
		host = serveHost
	}
	if servePort > 0 {
		port = servePort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	settings := currentSettings()
	if settings.Server.Debug {
		logger.SetVerbose(true)
	}

	if serveWatch {
		startWatching(cmd)
	}

	addr := serveAddr(settings.Server)
	server := httpapi.NewServer(familyService, settings.Parser, settings.Server.AllowedOrigins)

	cmd.Printf("rnamsa API listening on http://%s (source: %s)\n", addr, settings.Source.Type)
	return server.Run(cmd.Context(), addr)
}

// startWatching follows source changes when the family service supports it.
func startWatching(cmd *cobra.Command) {
	w, ok := familyService.(watcher)
	if !ok {
		return
	}
	err := w.StartWatching(cmd.Context())
	switch {
	case err == nil:
		logger.Debug("watching source for changes")
	case errors.Is(err, domain.ErrUnsupportedType):
		logger.Debug("source changes not watched: %v", err)
	default:
		logger.Warn("%v", fmt.Errorf("watching source: %w", err))
	}
}
