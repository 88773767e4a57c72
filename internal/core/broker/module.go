package broker

import (
	"go.uber.org/fx"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// moduleParams 模块装配注入参数
type moduleParams struct {
	fx.In

	// Stats 容器内注入的统计上报器（如 metrics 模块提供）
	Stats interfaces.StatsReporter `optional:"true"`
}

// Module 返回 Fx 模块
//
// 统计上报器优先取显式选项，其次取容器内注入的实现。
func Module(opts ...Option) fx.Option {
	return fx.Module(Name,
		fx.Provide(func(p moduleParams) *Registry {
			s := defaultSettings()
			for _, opt := range opts {
				opt(&s)
			}
			if s.stats == nil && p.Stats != nil {
				opts = append(opts, WithStats(p.Stats))
			}

			logger.Debug("模块加载",
				"module", Name,
				"version", Version,
				"description", Description)
			return NewRegistry(opts...)
		}),
	)
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "broker"
	// Description 模块描述
	Description = "按类型索引的消息代理，提供有界确定性的发布/订阅分发"
)
