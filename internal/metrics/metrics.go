// Package metrics counts cidemo operations in Prometheus format. CI jobs point
// metrics_file at a node_exporter textfile directory to collect them.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "cidemo"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder holds the operation metrics for one process.
type Recorder struct {
	registry *prometheus.Registry

	// OperationsTotal counts core operations by name and outcome.
	OperationsTotal *prometheus.CounterVec

	// CommandDuration tracks command wall time.
	CommandDuration *prometheus.HistogramVec

	// BuildInfo is always 1, labelled with version information.
	BuildInfo *prometheus.GaugeVec
}

// Default is the process-wide recorder used by the commands.
var Default = New()

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of greet, add and multiply operations",
		}, []string{"operation", "outcome"}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent running a command",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{"command"}),
		BuildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information",
		}, []string{"version", "go_version"}),
	}

	r.registry.MustRegister(r.OperationsTotal, r.CommandDuration, r.BuildInfo)
	return r
}

// Observe records one operation. A nil err counts as success.
func (r *Recorder) Observe(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.OperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveCommand records the duration of a command.
func (r *Recorder) ObserveCommand(command string, d time.Duration) {
	r.CommandDuration.WithLabelValues(command).Observe(d.Seconds())
}

// SetBuildInfo sets the build info gauge for version.
func (r *Recorder) SetBuildInfo(version string) {
	r.BuildInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteFile writes all metrics to path in the Prometheus text format. The
// file is replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory %q; %w", dir, err)
	}

	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file %q; %w", path, err)
	}

	return nil
}
