// Package metrics defines the metrics contract for the write stage.
//
// The materializer records through the OutputMetrics interface so the
// embedding process chooses the backend (Prometheus in
// pkg/metrics/prometheus) or disables metrics entirely by passing nil.
// All helpers tolerate a nil implementation.
package metrics

// OutputMetrics records materialization activity.
//
// Implementations must be safe for use with a nil receiver so callers
// can record unconditionally.
type OutputMetrics interface {
	// RecordObject counts one successfully materialized object by
	// type name (directory, regular, symlink, chardev, blockdev,
	// fifo, socket).
	RecordObject(objType string)

	// RecordBytes counts content bytes copied into regular files.
	RecordBytes(n int64)

	// RecordOwnershipFailure counts failed ownership fixups.
	RecordOwnershipFailure()
}

// RecordObject records a materialized object, tolerating nil metrics.
func RecordObject(m OutputMetrics, objType string) {
	if m == nil {
		return
	}
	m.RecordObject(objType)
}

// RecordBytes records copied bytes, tolerating nil metrics.
func RecordBytes(m OutputMetrics, n int64) {
	if m == nil {
		return
	}
	m.RecordBytes(n)
}

// RecordOwnershipFailure records a failed ownership fixup, tolerating
// nil metrics.
func RecordOwnershipFailure(m OutputMetrics) {
	if m == nil {
		return
	}
	m.RecordOwnershipFailure()
}
