package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/kepler/internal/cli"
	"github.com/agbru/kepler/internal/config"
	"github.com/agbru/kepler/internal/dataset"
	apperrors "github.com/agbru/kepler/internal/errors"
	"github.com/agbru/kepler/internal/kepler"
	"github.com/agbru/kepler/internal/logging"
	"github.com/agbru/kepler/internal/plot"
	"github.com/agbru/kepler/internal/report"
	"github.com/agbru/kepler/internal/sysmon"
	"github.com/agbru/kepler/internal/ui"
)

var tracer = otel.Tracer("github.com/agbru/kepler/internal/app")

// Application represents the kepler application instance.
type Application struct {
	Config    config.AppConfig
	Constants kepler.Constants
	Renderer  plot.Renderer
	Logger    logging.Logger
	ErrWriter io.Writer

	dataset *dataset.Dataset
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRenderer sets a custom plot renderer for the application.
func WithRenderer(r plot.Renderer) AppOption {
	return func(a *Application) { a.Renderer = r }
}

// WithDataset injects a dataset, bypassing the -dataset flag.
func WithDataset(ds dataset.Dataset) AppOption {
	return func(a *Application) { a.dataset = &ds }
}

// WithConstants replaces the reference constant source.
func WithConstants(c kepler.Constants) AppOption {
	return func(a *Application) { a.Constants = c }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		Constants: kepler.Reference,
		ErrWriter: errWriter,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Renderer == nil {
		app.Renderer = plot.NewGonumRenderer()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "kepler")
	}

	programName := "kepler"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run computes the periods, prints the deviation table to out and writes the
// configured artifacts. It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if err := logging.SetLevel(a.Config.LogLevel); err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.NoColor, out)

	start := time.Now()
	err := a.run(ctx, out)
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
	} else if a.Config.Verbose {
		cli.PrintCompletion(a.ErrWriter, time.Since(start), sysmon.Sample(ctx))
	}
	return apperrors.ExitCodeFor(err)
}

func (a *Application) run(ctx context.Context, out io.Writer) (err error) {
	ctx, span := tracer.Start(ctx, "kepler.run")
	defer func() { endSpan(span, err) }()

	if err := a.Constants.Validate(); err != nil {
		return err
	}
	ds, err := a.loadDataset()
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.String("dataset", ds.Name),
		attribute.Int("bodies", len(ds.Bodies)),
	)
	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, ds, a.Constants, a.ErrWriter)
	}

	periods, err := a.computePeriods(ctx, ds)
	if err != nil {
		return err
	}

	rows, err := report.Rows(periods.TestMass, periods.TwoBody, report.Units{Year: a.Constants.Year, Hour: a.Constants.Hour})
	if err != nil {
		return err
	}
	if err := cli.DisplayReport(out, rows); err != nil {
		return apperrors.WrapError(err, "write report")
	}

	return a.writeArtifacts(ctx, ds, periods)
}

// loadDataset returns the injected dataset, the -dataset file, or the
// built-in reference set, in that order.
func (a *Application) loadDataset() (dataset.Dataset, error) {
	switch {
	case a.dataset != nil:
		return *a.dataset, nil
	case a.Config.DatasetFile != "":
		ds, err := dataset.Load(a.Config.DatasetFile)
		if err != nil {
			return dataset.Dataset{}, err
		}
		a.Logger.Debug("dataset loaded",
			logging.String("path", a.Config.DatasetFile),
			logging.Int("bodies", len(ds.Bodies)))
		return ds, nil
	default:
		return dataset.Reference(), nil
	}
}

func (a *Application) computePeriods(ctx context.Context, ds dataset.Dataset) (periods kepler.Periods, err error) {
	_, span := tracer.Start(ctx, "kepler.compute_periods")
	defer func() { endSpan(span, err) }()

	periods, err = kepler.ComputePeriods(a.Constants.G, ds.Central, ds.Bodies)
	if err != nil {
		return kepler.Periods{}, err
	}
	a.Logger.Debug("periods computed",
		logging.String("central", ds.Central.Name),
		logging.Int("bodies", periods.Len()))
	return periods, nil
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
