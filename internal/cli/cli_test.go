package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/kepler/internal/config"
	"github.com/agbru/kepler/internal/dataset"
	"github.com/agbru/kepler/internal/kepler"
	"github.com/agbru/kepler/internal/report"
	"github.com/agbru/kepler/internal/sysmon"
	"github.com/agbru/kepler/internal/ui"
)

func referenceRows(t *testing.T) (kepler.Periods, report.Units) {
	t.Helper()
	ds := dataset.Reference()
	periods, err := kepler.ComputePeriods(kepler.GravitationalConstant, ds.Central, ds.Bodies)
	if err != nil {
		t.Fatal(err)
	}
	return periods, report.Units{Year: kepler.CalendarYear, Hour: kepler.Hour}
}

func TestDisplayReport_NoColorMatchesReportWrite(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	periods, units := referenceRows(t)
	rows, err := report.Rows(periods.TestMass, periods.TwoBody, units)
	if err != nil {
		t.Fatal(err)
	}

	var got, want bytes.Buffer
	if err := DisplayReport(&got, rows); err != nil {
		t.Fatal(err)
	}
	if err := report.Write(&want, rows); err != nil {
		t.Fatal(err)
	}
	if got.String() != want.String() {
		t.Errorf("DisplayReport output differs from report.Write\ngot:\n%s\nwant:\n%s", got.String(), want.String())
	}
}

func TestDisplayReport_ColorOnlyOnHeader(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.DarkTheme)

	periods, units := referenceRows(t)
	rows, err := report.Rows(periods.TestMass, periods.TwoBody, units)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := DisplayReport(&buf, rows); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], ui.DarkTheme.Underline) || !strings.Contains(lines[0], report.Header) {
		t.Errorf("header should be underlined, got %q", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "\033") {
			t.Errorf("rows must not contain escape codes: %q", line)
		}
	}
	if lines[3] != "  1.00  0.0132 1.5e-06" {
		t.Errorf("Earth row = %q", lines[3])
	}
}

func TestPrintExecutionConfig(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	cfg := config.AppConfig{PlotFile: "periods.png"}
	PrintExecutionConfig(cfg, dataset.Reference(), kepler.Reference, &buf)

	out := buf.String()
	for _, want := range []string{"reference", "9 bodies around Sun", "periods.png", "Metrics:", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary should contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintCompletion(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	PrintCompletion(&buf, 12*time.Millisecond, sysmon.Stats{CPUPercent: 5, MemPercent: 40, Valid: true})

	out := buf.String()
	for _, want := range []string{"Completed in", "12ms", "CPU 5.0%, memory 40.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("completion line should contain %q, got %q", want, out)
		}
	}
}

func TestDisplayError(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.DarkTheme)

	var buf bytes.Buffer
	DisplayError(&buf, errors.New("cannot read dataset planets.toml"))
	if got, want := buf.String(), "Error: cannot read dataset planets.toml\n"; got != want {
		t.Errorf("DisplayError wrote %q, want %q", got, want)
	}
}
