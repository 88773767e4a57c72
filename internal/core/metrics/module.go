package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Module 返回 Fx 模块
//
// 把 Reporter 同时作为具体类型和 StatsReporter 接口提供。
func Module(reg prometheus.Registerer) fx.Option {
	return fx.Module("metrics",
		fx.Provide(func() (*Reporter, error) {
			return NewReporter(reg)
		}),
		fx.Provide(func(r *Reporter) interfaces.StatsReporter {
			return r
		}),
	)
}
