package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/services"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

// secretKeys are masked when shown and read without echo when prompted.
var secretKeys = []string{services.KeyS3AccessKey, services.KeyS3SecretKey, services.KeyGitHubToken}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the rnamsa configuration.

Settings are stored in config.toml inside the configuration directory.
Environment variables (S3_HOST, S3_KEY, S3_SECRET, S3_BUCKET, GITHUB_TOKEN,
PORT, DEBUG, RNAMSA_SOURCE, RNAMSA_SOURCE_PATH) and a .env file in the
working directory take precedence over the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long: `Set a single configuration value and save it.

Secret values (s3.access_key, s3.secret_key, github.token) are read from
the terminal without echo when the value is omitted.

Keys:
  ` + strings.Join(services.SettingKeys(), "\n  "),
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Type: %s\n", settings.Source.Type.Description())
	cmd.Printf("  Path: %s\n", settings.Source.Path)
	cmd.Printf("  Key format: %s\n", settings.Source.KeyFormat)
	cmd.Println()

	cmd.Println("[S3]")
	cmd.Printf("  Endpoint: %s\n", orNotSet(settings.S3.Endpoint))
	cmd.Printf("  Bucket: %s\n", orNotSet(settings.S3.Bucket))
	cmd.Printf("  Region: %s\n", settings.S3.Region)
	cmd.Printf("  SSL: %s\n", yesNo(settings.S3.UseSSL))
	cmd.Printf("  Access key: %s\n", maskSecret(settings.S3.AccessKey))
	cmd.Printf("  Secret key: %s\n", maskSecret(settings.S3.SecretKey))
	cmd.Printf("  Status: %s\n", configuredStatus(settings.S3.IsConfigured()))
	cmd.Println()

	cmd.Println("[GitHub]")
	cmd.Printf("  Repository: %s\n", orNotSet(repoName(settings.GitHub)))
	cmd.Printf("  Ref: %s\n", settings.GitHub.Ref)
	cmd.Printf("  Token: %s\n", maskSecret(settings.GitHub.Token))
	cmd.Printf("  Status: %s\n", configuredStatus(settings.GitHub.IsConfigured()))
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s:%d\n", settings.Server.Host, settings.Server.Port)
	cmd.Printf("  Debug: %s\n", yesNo(settings.Server.Debug))
	cmd.Printf("  Allowed origins: %s\n", strings.Join(settings.Server.AllowedOrigins, ", "))
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  TTL: %s\n", settings.Cache.TTL)
	cmd.Println()

	cmd.Println("[Parser]")
	cmd.Printf("  Features: %s\n", yesNo(settings.Parser.Features))
	cmd.Printf("  Strict: %s\n", yesNo(settings.Parser.Strict))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		cmd.Printf("%s: ", key)
		if isSecretKey(key) {
			value = readSecret(cmd)
		} else {
			value = readLine(bufio.NewReader(cmd.InOrStdin()))
		}
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	shown := value
	if isSecretKey(key) {
		shown = maskSecret(value)
	}
	cmd.Printf("Set %s = %s\n", key, shown)
	return nil
}

func isSecretKey(key string) bool {
	return slices.Contains(secretKeys, key)
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readSecret reads without echo from a terminal and falls back to a plain line.
func readSecret(cmd *cobra.Command) string {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	return readLine(bufio.NewReader(cmd.InOrStdin()))
}

func maskSecret(secret string) string {
	switch {
	case secret == "":
		return "(not set)"
	case len(secret) <= 8:
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func repoName(g domain.GitHubSettings) string {
	if g.Owner == "" || g.Repo == "" {
		return ""
	}
	return g.Owner + "/" + g.Repo
}
