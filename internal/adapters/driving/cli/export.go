package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/normalisers/stockholm"
)

var (
	exportOutput string
	exportStrict bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file|->",
	Short: "Rewrite an alignment as a single-block Stockholm file",
	Long: `Parse a Stockholm alignment and write it back as a single block:
the header, one line per sequence, the reference and consensus rows
and the terminator. Interleaved blocks are joined.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportStrict, "strict", false, "reject rows whose column counts differ")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireFamilyService(); err != nil {
		return err
	}

	content, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	doc, err := familyService.Parse(cmd.Context(), content, domain.ParseOptions{Strict: exportStrict})
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if exportOutput == "" {
		return writeAlignment(cmd.OutOrStdout(), doc)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOutput, err)
	}
	if err := writeAlignment(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAlignment(w io.Writer, doc *domain.AlignmentDocument) error {
	if err := stockholm.Write(w, doc); err != nil {
		return fmt.Errorf("writing alignment: %w", err)
	}
	return nil
}
