// Package cli provides the rnamsa command-line interface built on cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// Services are the driving ports the commands operate on.
type Services struct {
	// Family fetches and parses alignments.
	Family driving.FamilyService

	// Settings reads and writes the configuration.
	Settings driving.SettingsService

	// Close releases the alignment source. Optional.
	Close func() error
}

// Bootstrap builds the services once the persistent flags are parsed.
type Bootstrap func(ctx context.Context, configDir string) (*Services, error)

// watcher is implemented by family services that can follow source changes.
type watcher interface {
	StartWatching(ctx context.Context) error
}

var (
	version = "dev"

	familyService   driving.FamilyService
	settingsService driving.SettingsService
	closeServices   func() error
	bootstrap       Bootstrap

	verbose   bool
	configDir string
)

var errServiceNotConfigured = errors.New("family service not configured")

var rootCmd = &cobra.Command{
	Use:   "rnamsa",
	Short: "RNA multiple sequence alignment toolkit",
	Long: `rnamsa reads RNA family alignments in Stockholm format.

It parses sequences, the "#=GC RF" reference row and the "#=GC SS_cons"
secondary structure consensus, and decodes the consensus into base pairs.
Alignments are served over HTTP and MCP, printed on the command line,
or browsed in a terminal viewer.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		`configuration directory (default ~/.rnamsa, ":memory:" for no file)`)
}

// setup enables logging and builds services unless they were injected.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if familyService != nil || bootstrap == nil {
		return nil
	}

	svcs, err := bootstrap(cmd.Context(), configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(svcs)
	return nil
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects services directly.
func SetServices(s *Services) {
	if s == nil {
		familyService, settingsService, closeServices = nil, nil, nil
		return
	}
	familyService = s.Family
	settingsService = s.Settings
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing source: %v", err)
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

// currentSettings returns the configured settings, or defaults when no
// settings service is available.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil || s == nil {
		logger.Warn("reading settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *s
}

func requireFamilyService() error {
	if familyService == nil {
		return errServiceNotConfigured
	}
	return nil
}

// readInput reads a file, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
