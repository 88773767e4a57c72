// Package metrics 提供基于 Prometheus 的运行统计上报
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// Reporter 把总线与编解码事件累积到 Prometheus 计数器
//
// 上报路径在发布/轮询热路径内，只做计数器自增，不分配、不加锁
// 等待（prometheus 计数器内部为原子操作）。
type Reporter struct {
	publishes     *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	framesWritten *prometheus.CounterVec
	framesRead    *prometheus.CounterVec
	bytesWritten  *prometheus.CounterVec
	bytesRead     *prometheus.CounterVec
	framingErrors prometheus.Counter
}

var _ interfaces.StatsReporter = (*Reporter)(nil)

// NewReporter 创建上报器并把所有指标注册到 reg
//
// reg 为 nil 时使用默认注册表。
func NewReporter(reg prometheus.Registerer) (*Reporter, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Reporter{
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "publishes_total",
			Help:      "本地总线 publish 调用次数",
		}, []string{"type_id"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "deliveries_total",
			Help:      "送达订阅者的消息总数",
		}, []string{"type_id"}),
		framesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "frames_written_total",
			Help:      "写出的完整帧数",
		}, []string{"type_id"}),
		framesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "frames_read_total",
			Help:      "读入并验证通过的完整帧数",
		}, []string{"type_id"}),
		bytesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "frame_bytes_written_total",
			Help:      "写出的帧字节总数（含定界开销）",
		}, []string{"type_id"}),
		bytesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "frame_bytes_read_total",
			Help:      "读入的帧字节总数（含定界开销）",
		}, []string{"type_id"}),
		framingErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sub0bus",
			Name:      "framing_errors_total",
			Help:      "帧同步丢失次数",
		}),
	}

	collectors := []prometheus.Collector{
		r.publishes, r.deliveries,
		r.framesWritten, r.framesRead,
		r.bytesWritten, r.bytesRead,
		r.framingErrors,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

// OnPublish 实现 interfaces.StatsReporter
func (r *Reporter) OnPublish(typeID uint32, delivered int) {
	label := typeLabel(typeID)
	r.publishes.WithLabelValues(label).Inc()
	r.deliveries.WithLabelValues(label).Add(float64(delivered))
}

// OnFrameWritten 实现 interfaces.StatsReporter
func (r *Reporter) OnFrameWritten(typeID uint32, frameBytes int) {
	label := typeLabel(typeID)
	r.framesWritten.WithLabelValues(label).Inc()
	r.bytesWritten.WithLabelValues(label).Add(float64(frameBytes))
}

// OnFrameRead 实现 interfaces.StatsReporter
func (r *Reporter) OnFrameRead(typeID uint32, frameBytes int) {
	label := typeLabel(typeID)
	r.framesRead.WithLabelValues(label).Inc()
	r.bytesRead.WithLabelValues(label).Add(float64(frameBytes))
}

// OnFramingError 实现 interfaces.StatsReporter
func (r *Reporter) OnFramingError() {
	r.framingErrors.Inc()
}

func typeLabel(typeID uint32) string {
	return fmt.Sprintf("%#08x", typeID)
}
