package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewReporter(reg)
	require.NoError(t, err)

	r.OnPublish(0x1001, 3)
	r.OnPublish(0x1001, 0)
	r.OnFrameWritten(0x1001, 17)
	r.OnFrameRead(0x1001, 17)
	r.OnFrameRead(0x1001, 17)
	r.OnFramingError()

	label := typeLabel(0x1001)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.publishes.WithLabelValues(label)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.deliveries.WithLabelValues(label)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.framesWritten.WithLabelValues(label)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.framesRead.WithLabelValues(label)))
	assert.Equal(t, 17.0, testutil.ToFloat64(r.bytesWritten.WithLabelValues(label)))
	assert.Equal(t, 34.0, testutil.ToFloat64(r.bytesRead.WithLabelValues(label)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.framingErrors))
}

func TestReporterDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewReporter(reg)
	require.NoError(t, err)

	_, err = NewReporter(reg)
	assert.Error(t, err)
}
