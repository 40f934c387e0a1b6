// Package prometheus provides the Prometheus implementation of the
// write-stage metrics contract.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/treesmith/treesmith/pkg/metrics"
)

// outputMetrics is the Prometheus implementation of metrics.OutputMetrics.
type outputMetrics struct {
	objectsWritten    *prometheus.CounterVec
	bytesWritten      prometheus.Counter
	ownershipFailures prometheus.Counter
}

// NewOutputMetrics creates a Prometheus-backed OutputMetrics instance
// registered with reg.
//
// Returns nil (metrics disabled) if reg is nil.
func NewOutputMetrics(reg prometheus.Registerer) metrics.OutputMetrics {
	if reg == nil {
		return nil
	}

	return &outputMetrics{
		objectsWritten: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "treesmith_output_objects_written_total",
				Help: "Total number of filesystem objects materialized by object type",
			},
			[]string{"type"}, // "directory", "regular", "symlink", "chardev", "blockdev", "fifo", "socket"
		),
		bytesWritten: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "treesmith_output_bytes_written_total",
				Help: "Total content bytes copied into materialized regular files",
			},
		),
		ownershipFailures: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "treesmith_output_ownership_failures_total",
				Help: "Total number of failed ownership fixups",
			},
		),
	}
}

// RecordObject counts one materialized object by type name.
func (m *outputMetrics) RecordObject(objType string) {
	if m == nil {
		return
	}
	m.objectsWritten.WithLabelValues(objType).Inc()
}

// RecordBytes counts content bytes copied into regular files.
func (m *outputMetrics) RecordBytes(n int64) {
	if m == nil {
		return
	}
	m.bytesWritten.Add(float64(n))
}

// RecordOwnershipFailure counts a failed ownership fixup.
func (m *outputMetrics) RecordOwnershipFailure() {
	if m == nil {
		return
	}
	m.ownershipFailures.Inc()
}
