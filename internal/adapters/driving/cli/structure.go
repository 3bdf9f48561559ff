package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var structureJSON bool

var structureCmd = &cobra.Command{
	Use:   "structure <consensus>",
	Short: "Decode a dot-bracket secondary structure",
	Long: `Decode a secondary structure consensus line into base pairs and
stem/loop features. Matching bracket pairs are (), <>, [] and {};
every other character is unpaired.

Example:
  rnamsa structure '<<<___>>>'`,
	Args: cobra.ExactArgs(1),
	RunE: runStructure,
}

func init() {
	structureCmd.Flags().BoolVar(&structureJSON, "json", false, "output the annotation as JSON")
	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	ann, err := familyService.DecodeStructure(cmd.Context(), args[0], true)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if structureJSON {
		return outputJSON(cmd, ann)
	}

	cmd.Printf("Consensus:  %s\n", ann.Consensus)
	outputStructureSummary(cmd, ann)
	return nil
}
