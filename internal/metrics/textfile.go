// Package metrics exports computed periods as Prometheus gauges, written in
// the text exposition format for node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/agbru/kepler/internal/errors"
	"github.com/agbru/kepler/internal/kepler"
)

const namespace = "kepler"

// PeriodMetrics holds the period gauges on a private registry, so repeated
// runs in one process never collide on the global one.
type PeriodMetrics struct {
	registry  *prometheus.Registry
	period    *prometheus.GaugeVec
	deviation *prometheus.GaugeVec
	ratio     *prometheus.GaugeVec
}

// NewPeriodMetrics creates and registers the period gauges.
func NewPeriodMetrics() *PeriodMetrics {
	m := &PeriodMetrics{
		registry: prometheus.NewRegistry(),
		period: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "period_seconds",
			Help:      "Orbital period by body and model.",
		}, []string{"body", "model"}),
		deviation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "period_deviation_seconds",
			Help:      "Test-mass period minus two-body period.",
		}, []string{"body"}),
		ratio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "period_deviation_ratio",
			Help:      "Deviation divided by the test-mass period.",
		}, []string{"body"}),
	}
	m.registry.MustRegister(m.period, m.deviation, m.ratio)
	return m
}

// Observe sets the gauges for every body. bodies and periods must be aligned,
// and body names must be unique since they label the series. Nothing is
// recorded when either check fails.
func (m *PeriodMetrics) Observe(bodies []kepler.Body, periods kepler.Periods) error {
	if len(bodies) != periods.Len() || len(periods.TestMass) != len(periods.TwoBody) {
		return apperrors.LengthMismatchError{Left: len(bodies), Right: len(periods.TwoBody)}
	}
	seen := make(map[string]int, len(bodies))
	for i, b := range bodies {
		if first, dup := seen[b.Name]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("bodies[%d].name", i),
				"duplicate body name %q (first at bodies[%d])", b.Name, first)
		}
		seen[b.Name] = i
	}
	for i, b := range bodies {
		testMass, twoBody := periods.TestMass[i], periods.TwoBody[i]
		m.period.WithLabelValues(b.Name, kepler.TestMass.String()).Set(testMass)
		m.period.WithLabelValues(b.Name, kepler.TwoBody.String()).Set(twoBody)
		m.deviation.WithLabelValues(b.Name).Set(testMass - twoBody)
		if testMass > 0 {
			m.ratio.WithLabelValues(b.Name).Set((testMass - twoBody) / testMass)
		}
	}
	return nil
}

// WriteTextfile atomically writes all gauges to path in the Prometheus text
// format.
func (m *PeriodMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return apperrors.WrapError(err, "write metrics %s", path)
	}
	return nil
}
