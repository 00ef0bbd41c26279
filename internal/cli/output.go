// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatSummary].
//
//   - Print* functions write auxiliary, human-oriented output.
//     Examples: [PrintExecutionConfig], [PrintCompletion].

package cli

import (
	"fmt"
	"io"
	"iter"

	"github.com/agbru/kepler/internal/report"
	"github.com/agbru/kepler/internal/ui"
)

// DisplayReport writes the deviation table to out.
//
// The header is underlined when the current theme has colors; rows are never
// colored, so their column widths stay exact. With the no-color theme the
// output is byte-identical to report.Write.
//
// Parameters:
//   - out: The output writer.
//   - rows: The rows produced by report.Rows.
//
// Returns:
//   - error: The first write error, if any.
func DisplayReport(out io.Writer, rows iter.Seq[report.Row]) error {
	if ui.ColorUnderline() == "" {
		return report.Write(out, rows)
	}
	if _, err := fmt.Fprintf(out, "%s%s%s\n", ui.ColorUnderline(), report.Header, ui.ColorReset()); err != nil {
		return err
	}
	for row := range rows {
		if _, err := fmt.Fprintln(out, row.String()); err != nil {
			return err
		}
	}
	return nil
}

// DisplayError writes err to out with a bold red "Error:" prefix when out is
// a color terminal.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", ui.Paint(out, ui.ColorBold()+ui.ColorRed(), "Error:"), err)
}
