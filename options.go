package sub0bus

import (
	"fmt"

	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/internal/core/metrics"
	"github.com/sub0bus/go-sub0bus/internal/core/wire"
	"github.com/sub0bus/go-sub0bus/pkg/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 容量配置
	subscriberCapacity int
	directoryCapacity  int

	// 帧协议
	proto Protocol

	// 统计上报
	stats interfaces.StatsReporter
}

// defaultOptions 返回默认选项
func defaultOptions() options {
	return options{
		subscriberCapacity: broker.DefaultSubscriberCapacity,
		directoryCapacity:  wire.DefaultDirectoryCapacity,
		proto:              wire.DefaultProtocol(),
	}
}

// WithSubscriberCapacity 设置每个类型的订阅表容量
func WithSubscriberCapacity(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("subscriber capacity must be positive, got %d", n)
		}
		o.subscriberCapacity = n
		return nil
	}
}

// WithDirectoryCapacity 设置入站桥接的缓冲目录容量
func WithDirectoryCapacity(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("directory capacity must be positive, got %d", n)
		}
		o.directoryCapacity = n
		return nil
	}
}

// WithProtocol 设置帧定界协议
//
// 发送端与接收端必须使用相同的协议常量。
func WithProtocol(p Protocol) Option {
	return func(o *options) error {
		o.proto = p
		return nil
	}
}

// WithStats 设置自定义统计上报器
func WithStats(s interfaces.StatsReporter) Option {
	return func(o *options) error {
		o.stats = s
		return nil
	}
}

// WithPrometheus 启用 Prometheus 统计上报
//
// reg 为 nil 时使用默认注册表。
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(o *options) error {
		r, err := metrics.NewReporter(reg)
		if err != nil {
			return fmt.Errorf("prometheus reporter: %w", err)
		}
		o.stats = r
		return nil
	}
}
