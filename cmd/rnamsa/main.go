// Command rnamsa reads, serves and browses RNA family alignments in
// Stockholm format.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/rna-msa/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rna-msa/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/cli"
	"github.com/custodia-labs/rna-msa/internal/connectors"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
	"github.com/custodia-labs/rna-msa/internal/core/services"
	"github.com/custodia-labs/rna-msa/internal/logger"
	"github.com/custodia-labs/rna-msa/internal/normalisers/stockholm"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// memoryConfigDir selects an in-memory configuration that is never saved.
const memoryConfigDir = ":memory:"

// dotEnvFile is read from the working directory when present.
const dotEnvFile = ".env"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the configuration, source, cache and parser into services.
// A source that cannot be built is replaced by one that reports it as
// unavailable, so local parsing keeps working.
func bootstrap(ctx context.Context, configDir string) (*cli.Services, error) {
	base, err := openConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening configuration: %w", err)
	}
	store, err := file.NewEnvStore(base, dotEnvFile)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	var source driven.AlignmentSource
	source, err = connectors.NewFactory().Create(ctx, *settings)
	if err != nil {
		logger.Warn("alignment source %s unavailable: %v", settings.Source.Type, err)
		source = connectors.NewUnavailable(settings.Source.Type, err)
	}

	familyService := services.NewFamilyService(
		source,
		stockholm.New(),
		memory.NewAlignmentCache(settings.Cache.TTL),
	)
	familyService.SetVersion(version)

	return &cli.Services{
		Family:   familyService,
		Settings: settingsService,
		Close:    source.Close,
	}, nil
}

func openConfigStore(configDir string) (driven.ConfigStore, error) {
	if configDir == memoryConfigDir {
		return memory.NewConfigStore(), nil
	}
	return file.NewConfigStore(configDir)
}
