package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/httpapi"
)

var (
	familyJSON     bool
	familyFeatures bool
	familyStrict   bool
)

var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "Fetch RNA families from the configured source",
	Long: `Fetch RNA family alignments from the configured source
(a local directory, an S3 bucket or a GitHub repository).`,
}

var familyGetCmd = &cobra.Command{
	Use:   "get <identifier>",
	Short: "Fetch and parse a family alignment",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamilyGet,
}

var familyRawCmd = &cobra.Command{
	Use:   "raw <identifier>",
	Short: "Print a family alignment exactly as stored",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamilyRaw,
}

var familyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the families available from the source",
	Args:  cobra.NoArgs,
	RunE:  runFamilyList,
}

func init() {
	familyGetCmd.Flags().BoolVar(&familyJSON, "json", false, "output the family as JSON")
	familyGetCmd.Flags().BoolVar(&familyFeatures, "features", false, "segment the consensus into stems and loops (default from parser.features)")
	familyGetCmd.Flags().BoolVar(&familyStrict, "strict", false, "reject rows whose column counts differ (default from parser.strict)")
	familyCmd.AddCommand(familyGetCmd)
	familyCmd.AddCommand(familyRawCmd)
	familyCmd.AddCommand(familyListCmd)
	rootCmd.AddCommand(familyCmd)
}

func runFamilyGet(cmd *cobra.Command, args []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	family, err := familyService.Get(cmd.Context(), args[0], parseOptions(cmd, familyFeatures, familyStrict))
	if err != nil {
		return fmt.Errorf("failed to get family: %w", err)
	}

	if familyJSON {
		return outputJSON(cmd, httpapi.NewFamilyPayload(family))
	}

	meta := family.Metadata()
	cmd.Println(meta.Title)
	cmd.Println(strings.Repeat("=", len(meta.Title)))
	cmd.Println(meta.Source)
	cmd.Println()
	outputDocument(cmd, family.Document, terminalWidth(cmd))
	return nil
}

func runFamilyRaw(cmd *cobra.Command, args []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	raw, err := familyService.GetRaw(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get family: %w", err)
	}
	cmd.Print(raw)
	return nil
}

func runFamilyList(cmd *cobra.Command, _ []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	ids, err := familyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list families: %w", err)
	}

	if len(ids) == 0 {
		cmd.Println("No families found.")
		return nil
	}
	for _, id := range ids {
		cmd.Println(id)
	}
	return nil
}
