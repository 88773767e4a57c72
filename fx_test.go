package sub0bus

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestFxModuleProvidesBus(t *testing.T) {
	var bus *Bus
	app := fx.New(
		Module(WithSubscriberCapacity(4)),
		NopFxLogger(),
		fx.Populate(&bus),
	)
	require.NoError(t, app.Err())
	require.NotNil(t, bus)

	id, err := bus.RegisterType(0, "fx.probe", airPressure{})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(id, airPressure{}))

	require.NoError(t, app.Start(context.Background()))
	require.NoError(t, app.Stop(context.Background()))
}

func TestFxModuleWithMetrics(t *testing.T) {
	promReg := prometheus.NewRegistry()

	var bus *Bus
	app := fx.New(
		Module(),
		MetricsModule(promReg),
		NopFxLogger(),
		fx.Populate(&bus),
	)
	require.NoError(t, app.Err())
	require.NotNil(t, bus)

	// 容器注入的上报器贯通到 broker 的分发路径
	id, err := bus.RegisterType(0, "fx.metrics", airPressure{})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(id, airPressure{}))

	n, err := testutil.GatherAndCount(promReg, "sub0bus_publishes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFxModuleRejectsBadOption(t *testing.T) {
	app := fx.New(
		Module(WithSubscriberCapacity(-1)),
		NopFxLogger(),
	)
	assert.Error(t, app.Err())
}
