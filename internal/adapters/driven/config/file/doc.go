// Package file provides file-based implementations of driven port interfaces.
// These adapters read configuration from the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage (~/.rnamsa/config.toml)
//   - EnvStore: environment and .env overrides layered over another ConfigStore
package file
