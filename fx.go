package sub0bus

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/internal/core/metrics"
	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// busParams Bus 装配注入参数
type busParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  *broker.Registry

	// Stats 容器内注入的统计上报器（如 MetricsModule 提供）
	Stats interfaces.StatsReporter `optional:"true"`
}

// Module 返回 Sub0Bus 的 Fx 模块
//
// 经 broker.Module 提供 *broker.Registry，在其上装配 *Bus 单例并把
// Close 挂到应用生命周期上。统计上报器可由 MetricsModule（或用户
// 自己的 Provide）注入：显式的 WithStats/WithPrometheus 选项优先，
// 其次取容器内的实现，二者皆无时不上报。
func Module(opts ...Option) fx.Option {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return fx.Error(err)
		}
	}

	brokerOpts := []broker.Option{
		broker.WithSubscriberCapacity(o.subscriberCapacity),
	}
	if o.stats != nil {
		brokerOpts = append(brokerOpts, broker.WithStats(o.stats))
	}

	return fx.Options(
		broker.Module(brokerOpts...),
		fx.Module("sub0bus",
			fx.Provide(func(p busParams) *Bus {
				if o.stats == nil {
					o.stats = p.Stats
				}
				bus := newBus(p.Registry, o)
				p.Lifecycle.Append(fx.Hook{
					OnStop: func(context.Context) error {
						return bus.Close()
					},
				})
				return bus
			}),
		),
	)
}

// MetricsModule 返回 Prometheus 统计上报的 Fx 模块
//
// 提供 interfaces.StatsReporter，由 Module 的装配路径消费。
// reg 为 nil 时使用默认注册表。
func MetricsModule(reg prometheus.Registerer) fx.Option {
	return metrics.Module(reg)
}

// NopFxLogger 禁用 Fx 自身的日志输出（避免干扰用户日志）
func NopFxLogger() fx.Option {
	return fx.WithLogger(func() fxevent.Logger {
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	})
}
