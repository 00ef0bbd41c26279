package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/kepler/internal/dataset"
	apperrors "github.com/agbru/kepler/internal/errors"
	"github.com/agbru/kepler/internal/kepler"
	"github.com/agbru/kepler/internal/plot"
	"github.com/agbru/kepler/internal/plot/mocks"
)

const referenceTable = `T [yr] dev [hr] dev rel.
  0.24  0.0002 8.3e-08
  0.62  0.0066 1.2e-06
  1.00  0.0132 1.5e-06
  1.88  0.0027 1.6e-07
 11.88 49.6    4.8e-04
 29.68 37.2    1.4e-04
 84.20 16.1    2.2e-05
164.82 37.2    2.6e-05
248.26  0.0071 3.3e-09
`

func newTestApp(t *testing.T, args []string, opts ...AppOption) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	application, err := New(append([]string{"kepler"}, args...), &errBuf, opts...)
	if err != nil {
		t.Fatalf("New(%v) returned error: %v (stderr: %s)", args, err, errBuf.String())
	}
	return application, &errBuf
}

func TestRun_ReferenceTable(t *testing.T) {
	application, errBuf := newTestApp(t, nil)
	var out bytes.Buffer

	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr: %s", code, errBuf.String())
	}
	if out.String() != referenceTable {
		t.Errorf("unexpected table:\n%s\nwant:\n%s", out.String(), referenceTable)
	}
}

func TestRun_RendersPlotWithRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	path := filepath.Join(t.TempDir(), "periods.svg")

	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), path).
		DoAndReturn(func(_ context.Context, chart plot.Chart, _ string) error {
			if chart.Len() != 9 {
				t.Errorf("chart has %d points, want 9", chart.Len())
			}
			if chart.Names[2] != "Earth" {
				t.Errorf("chart.Names[2] = %q, want Earth", chart.Names[2])
			}
			return nil
		}).
		Times(1)

	application, errBuf := newTestApp(t, []string{"-plot", path}, WithRenderer(renderer))
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr: %s", code, errBuf.String())
	}
	if out.String() != referenceTable {
		t.Error("plot rendering must not alter the table")
	}
}

func TestRun_NoPlotFlagSkipsRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	application, _ := newTestApp(t, nil, WithRenderer(renderer))
	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d", code)
	}
}

func TestRun_RendererErrorIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	path := filepath.Join(t.TempDir(), "periods.png")
	application, errBuf := newTestApp(t, []string{"-plot", path}, WithRenderer(renderer))
	var out bytes.Buffer

	if code := application.Run(context.Background(), &out); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run returned %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errBuf.String(), "Error: disk full") {
		t.Errorf("stderr should mention the renderer error, got %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), `"message":"artifact failed"`) {
		t.Errorf("the artifact failure should be logged, got %q", errBuf.String())
	}
	if out.String() != referenceTable {
		t.Error("the table should be printed before artifacts are rendered")
	}
}

func TestRun_RenderTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ plot.Chart, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		})

	path := filepath.Join(t.TempDir(), "periods.png")
	application, errBuf := newTestApp(t, []string{"-plot", path, "-timeout", "20ms"}, WithRenderer(renderer))

	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorTimeout {
		t.Errorf("Run returned %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if !strings.Contains(errBuf.String(), "timed out after 20ms") {
		t.Errorf("stderr = %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), `"message":"artifacts timed out"`) {
		t.Errorf("the timeout should be logged, got %q", errBuf.String())
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ plot.Chart, _ string) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "periods.png")
	application, _ := newTestApp(t, []string{"-plot", path}, WithRenderer(renderer))
	if code := application.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
		t.Errorf("Run returned %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRun_InvalidDataset(t *testing.T) {
	ds := dataset.Dataset{
		Name:    "broken",
		Central: dataset.Sun,
		Bodies: []kepler.Body{
			{Name: "Earth", Mass: 5.9724e24, SemiMajorAxis: 149.598e9},
			{Name: "Vulcan", Mass: 1e23, SemiMajorAxis: -1},
		},
	}
	application, errBuf := newTestApp(t, nil, WithDataset(ds))
	var out bytes.Buffer

	if code := application.Run(context.Background(), &out); code != apperrors.ExitErrorInvalidInput {
		t.Errorf("Run returned %d, want %d", code, apperrors.ExitErrorInvalidInput)
	}
	if out.Len() != 0 {
		t.Errorf("no rows should be printed for an invalid batch, got %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "bodies[1] (Vulcan).semiMajorAxis") {
		t.Errorf("stderr should name the offending body, got %q", errBuf.String())
	}
}

func TestRun_InvalidConstants(t *testing.T) {
	c := kepler.Reference
	c.Hour = 0
	application, _ := newTestApp(t, nil, WithConstants(c))
	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorInvalidInput {
		t.Errorf("Run returned %d, want %d", code, apperrors.ExitErrorInvalidInput)
	}
}

func TestRun_DatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.toml")
	data := `
[[bodies]]
name = "Earth"
mass = 5.9724e24
semi_major_axis = 149.598e9
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	application, errBuf := newTestApp(t, []string{"-dataset", path})
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr: %s", code, errBuf.String())
	}
	want := "T [yr] dev [hr] dev rel.\n  1.00  0.0132 1.5e-06\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRun_MissingDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	application, _ := newTestApp(t, []string{"-dataset", path})
	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorConfig {
		t.Errorf("Run returned %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kepler.prom")
	application, errBuf := newTestApp(t, []string{"-metrics", path})

	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr: %s", code, errBuf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{
		`kepler_period_seconds{body="Earth",model="test_mass"}`,
		`kepler_period_deviation_ratio{body="Jupiter"}`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file missing %s", want)
		}
	}
}

func TestRun_VerbosePrintsSummary(t *testing.T) {
	application, errBuf := newTestApp(t, []string{"-v", "-log-level", "error"})
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d", code)
	}
	if !strings.Contains(errBuf.String(), "reference") || !strings.Contains(errBuf.String(), "Completed in") {
		t.Errorf("verbose summary should name the dataset, got %q", errBuf.String())
	}
	if out.String() != referenceTable {
		t.Error("the summary must not be written to stdout")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantHelp bool
		wantCode int
	}{
		{name: "help", args: []string{"kepler", "-help"}, wantHelp: true},
		{name: "unknown flag", args: []string{"kepler", "-bogus"}},
		{name: "positional argument", args: []string{"kepler", "extra"}, wantCode: apperrors.ExitErrorConfig},
		{name: "bad timeout", args: []string{"kepler", "-timeout", "0s"}, wantCode: apperrors.ExitErrorConfig},
		{name: "bad plot extension", args: []string{"kepler", "-plot", "out.txt"}, wantCode: apperrors.ExitErrorConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			application, err := New(tt.args, &errBuf)
			if err == nil {
				t.Fatalf("expected an error, got application %+v", application.Config)
			}
			if got := IsHelpError(err); got != tt.wantHelp {
				t.Errorf("IsHelpError = %v, want %v", got, tt.wantHelp)
			}
			if tt.wantCode != 0 {
				if got := apperrors.ExitCodeFor(err); got != tt.wantCode {
					t.Errorf("ExitCodeFor = %d, want %d", got, tt.wantCode)
				}
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	application, _ := newTestApp(t, nil)
	if application.Config.Timeout != 30*time.Second {
		t.Errorf("default timeout = %s", application.Config.Timeout)
	}
	if application.Constants != kepler.Reference {
		t.Error("default constants should be the reference set")
	}
	if _, ok := application.Renderer.(plot.GonumRenderer); !ok {
		t.Errorf("default renderer is %T, want plot.GonumRenderer", application.Renderer)
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-version"}, true},
		{[]string{"-v", "--version"}, true},
		{[]string{"-V"}, false},
		{[]string{"-v"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestRun_VersionFlag(t *testing.T) {
	application, _ := newTestApp(t, []string{"-version"})
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d", code)
	}
	if !strings.HasPrefix(out.String(), "kepler "+Version) || strings.Contains(out.String(), "T [yr]") {
		t.Errorf("-version should print only the banner, got %q", out.String())
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "kepler "+Version) {
		t.Errorf("unexpected banner %q", buf.String())
	}
}
