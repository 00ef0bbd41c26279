package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/kepler/internal/dataset"
	apperrors "github.com/agbru/kepler/internal/errors"
	"github.com/agbru/kepler/internal/kepler"
	"github.com/agbru/kepler/internal/logging"
	"github.com/agbru/kepler/internal/metrics"
	"github.com/agbru/kepler/internal/plot"
)

// writeArtifacts renders the plot and the metrics textfile concurrently,
// bounded by the configured timeout and interrupted by SIGINT/SIGTERM.
// The table has already been written when this runs.
func (a *Application) writeArtifacts(ctx context.Context, ds dataset.Dataset, periods kepler.Periods) error {
	if a.Config.PlotFile == "" && a.Config.MetricsFile == "" {
		return nil
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	g, gctx := errgroup.WithContext(ctx)
	if a.Config.PlotFile != "" {
		g.Go(func() error { return a.renderPlot(gctx, ds, periods) })
	}
	if a.Config.MetricsFile != "" {
		g.Go(func() error { return a.writeMetrics(gctx, ds, periods) })
	}

	err := g.Wait()
	switch {
	case err == nil:
		return nil
	case !apperrors.IsContextError(err):
		a.Logger.Error("artifact failed", err,
			logging.String("plot", a.Config.PlotFile),
			logging.String("metrics", a.Config.MetricsFile))
		return err
	case errors.Is(err, context.DeadlineExceeded):
		a.Logger.Error("artifacts timed out", err, logging.Float64("timeout_seconds", a.Config.Timeout.Seconds()))
		return apperrors.TimeoutError{Operation: "write artifacts", Limit: a.Config.Timeout}
	default:
		return apperrors.WrapError(err, "write artifacts")
	}
}

func (a *Application) renderPlot(ctx context.Context, ds dataset.Dataset, periods kepler.Periods) (err error) {
	ctx, span := tracer.Start(ctx, "kepler.render_plot")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("path", a.Config.PlotFile))

	chart, err := plot.NewChart("Orbital period vs semi-major axis ("+ds.Name+")", ds.Bodies, periods, a.Constants)
	if err != nil {
		return err
	}
	if err := a.Renderer.Render(ctx, chart, a.Config.PlotFile); err != nil {
		return err
	}
	a.Logger.Info("plot written", logging.String("path", a.Config.PlotFile), logging.Int("points", chart.Len()))
	return nil
}

func (a *Application) writeMetrics(ctx context.Context, ds dataset.Dataset, periods kepler.Periods) (err error) {
	_, span := tracer.Start(ctx, "kepler.write_metrics")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("path", a.Config.MetricsFile))

	m := metrics.NewPeriodMetrics()
	if err := m.Observe(ds.Bodies, periods); err != nil {
		return err
	}
	if err := m.WriteTextfile(a.Config.MetricsFile); err != nil {
		return err
	}
	a.Logger.Info("metrics written", logging.String("path", a.Config.MetricsFile))
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
