package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/kepler/internal/config"
	"github.com/agbru/kepler/internal/dataset"
	"github.com/agbru/kepler/internal/format"
	"github.com/agbru/kepler/internal/kepler"
	"github.com/agbru/kepler/internal/sysmon"
	"github.com/agbru/kepler/internal/ui"
)

// FormatSummary returns the execution summary lines: dataset, central body,
// constants and artifact destinations.
func FormatSummary(cfg config.AppConfig, ds dataset.Dataset, c kepler.Constants) string {
	label := ui.LabelStyle()
	lines := []string{
		fmt.Sprintf("%s %s (%d bodies around %s, %.6g kg)",
			label.Render("Dataset:"), ds.Name, len(ds.Bodies), ds.Central.Name, ds.Central.Mass),
		fmt.Sprintf("%s G=%.6g m³/(kg·s²), year=%gs, hour=%gs",
			label.Render("Constants:"), c.G, c.Year, c.Hour),
		fmt.Sprintf("%s %s", label.Render("Plot:"), orNone(cfg.PlotFile)),
		fmt.Sprintf("%s %s", label.Render("Metrics:"), orNone(cfg.MetricsFile)),
		fmt.Sprintf("%s Go %s, %s/%s", label.Render("Environment:"), runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
	return strings.Join(lines, "\n")
}

// PrintExecutionConfig writes the framed execution summary to out.
//
// Parameters:
//   - cfg: The application configuration.
//   - ds: The dataset about to be computed.
//   - c: The constant source.
//   - out: The writer for the summary (stderr, to keep stdout for the table).
func PrintExecutionConfig(cfg config.AppConfig, ds dataset.Dataset, c kepler.Constants, out io.Writer) {
	fmt.Fprintln(out, ui.SummaryStyle().Render(FormatSummary(cfg, ds, c)))
}

func orNone(path string) string {
	if path == "" {
		return "none"
	}
	return path
}

// PrintCompletion writes the elapsed time and host usage after a run.
func PrintCompletion(out io.Writer, elapsed time.Duration, host sysmon.Stats) {
	fmt.Fprintf(out, "%s %s (host %s)\n", ui.LabelStyle().Render("Completed in"), ui.Paint(out, ui.ColorGreen(), format.Duration(elapsed)), host)
}
