package broker

import "github.com/sub0bus/go-sub0bus/pkg/interfaces"

// ============================================================================
// 选项
// ============================================================================

// settings Registry 构造设置
type settings struct {
	subscriberCapacity int
	stats              interfaces.StatsReporter
}

func defaultSettings() settings {
	return settings{
		subscriberCapacity: DefaultSubscriberCapacity,
	}
}

// Option Registry 构造选项
type Option func(*settings)

// WithSubscriberCapacity 设置每个 Broker 的订阅表容量
//
// 容量在构造后固定；非正值回退为默认值。
func WithSubscriberCapacity(n int) Option {
	return func(s *settings) {
		s.subscriberCapacity = n
	}
}

// WithStats 设置运行统计上报器
func WithStats(r interfaces.StatsReporter) Option {
	return func(s *settings) {
		s.stats = r
	}
}
