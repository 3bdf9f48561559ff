package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

func outputJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	// Keep dot-bracket '<' and '>' readable.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}

// terminalWidth returns the width of the command's output when it is a
// terminal, or 0 when output is redirected.
func terminalWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// outputDocument prints a summary followed by the alignment rows.
// Rows are wrapped into blocks when width is positive.
func outputDocument(cmd *cobra.Command, doc *domain.AlignmentDocument, width int) {
	cmd.Printf("Sequences:  %d\n", doc.Len())
	cmd.Printf("Columns:    %d\n", doc.Columns())
	if doc.Reference != "" {
		cmd.Printf("Reference:  yes\n")
	}
	if doc.Structure != nil {
		outputStructureSummary(cmd, doc.Structure)
	}

	rows := make([][2]string, 0, doc.Len()+2)
	for _, rec := range doc.Sequences {
		rows = append(rows, [2]string{rec.Name, rec.Sequence})
	}
	if doc.Reference != "" {
		rows = append(rows, [2]string{"#=GC RF", doc.Reference})
	}
	if doc.Structure != nil {
		rows = append(rows, [2]string{"#=GC SS_cons", doc.Structure.Consensus})
	}
	if len(rows) == 0 {
		return
	}

	cmd.Println()
	outputRows(cmd, rows, width)
}

func outputStructureSummary(cmd *cobra.Command, s *domain.StructureAnnotation) {
	cmd.Printf("Base pairs: %d\n", len(s.BasePairs))
	if len(s.BasePairs) > 0 {
		pairs := make([]string, 0, len(s.BasePairs))
		for _, bp := range s.BasePairs {
			pairs = append(pairs, fmt.Sprintf("%d-%d", bp.X, bp.Y))
		}
		cmd.Printf("  %s\n", strings.Join(pairs, " "))
	}
	if len(s.Features) > 0 {
		cmd.Printf("Features:   %d\n", len(s.Features))
		for _, f := range s.Features {
			cmd.Printf("  %s\n", f.Label)
		}
	}
}

// outputRows prints name/text rows with a fixed name column.
func outputRows(cmd *cobra.Command, rows [][2]string, width int) {
	nameWidth := 0
	longest := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, len(r[0]))
		longest = max(longest, len(r[1]))
	}

	chunk := longest
	if width > 0 {
		chunk = max(width-nameWidth-2, 10)
	}
	if chunk == 0 {
		chunk = 1
	}

	for start := 0; start < max(longest, 1); start += chunk {
		if start > 0 {
			cmd.Println()
		}
		for _, r := range rows {
			text := ""
			if start < len(r[1]) {
				text = r[1][start:min(start+chunk, len(r[1]))]
			}
			cmd.Printf("%-*s  %s\n", nameWidth, r[0], text)
		}
	}
}
