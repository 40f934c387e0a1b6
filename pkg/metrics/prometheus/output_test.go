package prometheus

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treesmith/treesmith/pkg/metrics"
)

func TestNewOutputMetrics(t *testing.T) {
	t.Run("NilRegistererDisablesMetrics", func(t *testing.T) {
		m := NewOutputMetrics(nil)
		assert.Nil(t, m)

		// The nil-safe helpers must tolerate the disabled instance.
		metrics.RecordObject(m, "regular")
		metrics.RecordBytes(m, 42)
		metrics.RecordOwnershipFailure(m)
	})

	t.Run("RegistersAllCollectors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewOutputMetrics(reg)
		require.NotNil(t, m)

		m.RecordObject("regular")
		m.RecordObject("regular")
		m.RecordObject("directory")
		m.RecordBytes(5)
		m.RecordBytes(7)
		m.RecordOwnershipFailure()

		expected := `
# HELP treesmith_output_bytes_written_total Total content bytes copied into materialized regular files
# TYPE treesmith_output_bytes_written_total counter
treesmith_output_bytes_written_total 12
# HELP treesmith_output_objects_written_total Total number of filesystem objects materialized by object type
# TYPE treesmith_output_objects_written_total counter
treesmith_output_objects_written_total{type="directory"} 1
treesmith_output_objects_written_total{type="regular"} 2
# HELP treesmith_output_ownership_failures_total Total number of failed ownership fixups
# TYPE treesmith_output_ownership_failures_total counter
treesmith_output_ownership_failures_total 1
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
	})
}
