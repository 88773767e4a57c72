package broker

import (
	"fmt"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/lib/log"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

var logger = log.Logger("core/broker")

// DefaultSubscriberCapacity 每个 Broker 的默认订阅表容量
const DefaultSubscriberCapacity = 8

// ============================================================================
// Broker 实现
// ============================================================================

// Broker 管理单一消息类型的发布-订阅连接
//
// 订阅表为固定容量；分发按注册顺序同步进行。
type Broker struct {
	subs     []interfaces.Subscriber // 一次性分配，len 为当前订阅数
	typeID   uint32
	typeName string
	stats    interfaces.StatsReporter
}

// newBroker 创建指定容量的 Broker
func newBroker(capacity int, stats interfaces.StatsReporter) *Broker {
	if capacity <= 0 {
		capacity = DefaultSubscriberCapacity
	}
	return &Broker{
		subs:  make([]interfaces.Subscriber, 0, capacity),
		stats: stats,
	}
}

// Register 将订阅者追加到订阅表
//
// 表满返回 ErrCapacityExceeded；重复注册返回 ErrDuplicateSubscriber。
// 两者均属配置类错误，表示构建/集成缺陷。
func (b *Broker) Register(s interfaces.Subscriber) error {
	if s == nil {
		return fmt.Errorf("%w: type %#08x", types.ErrNilSubscriber, b.typeID)
	}
	if len(b.subs) == cap(b.subs) {
		return fmt.Errorf("%w: subscriber table for type %#08x full (capacity %d)",
			types.ErrCapacityExceeded, b.typeID, cap(b.subs))
	}
	for _, existing := range b.subs {
		if existing == s {
			return fmt.Errorf("%w: type %#08x", types.ErrDuplicateSubscriber, b.typeID)
		}
	}
	b.subs = append(b.subs, s)

	logger.Debug("新增订阅",
		"typeID", b.typeID,
		"typeName", b.typeName,
		"count", len(b.subs))
	return nil
}

// Unregister 移除精确匹配的订阅者
//
// 未找到时返回 ErrNotRegistered。移除保持剩余订阅者的注册顺序。
func (b *Broker) Unregister(s interfaces.Subscriber) error {
	for i, existing := range b.subs {
		if existing == s {
			copy(b.subs[i:], b.subs[i+1:])
			b.subs[len(b.subs)-1] = nil
			b.subs = b.subs[:len(b.subs)-1]

			logger.Debug("移除订阅",
				"typeID", b.typeID,
				"typeName", b.typeName,
				"count", len(b.subs))
			return nil
		}
	}
	return fmt.Errorf("%w: type %#08x", types.ErrNotRegistered, b.typeID)
}

// Publish 将数据按注册顺序同步分发给所有订阅者
//
// 对每个订阅者先求值 Filter(data)，为真时调用 Receive(data)。
// 分发在调用线程内完成；不产生分配。
func (b *Broker) Publish(data any) {
	delivered := 0
	for _, s := range b.subs {
		if s.Filter(data) {
			s.Receive(data)
			delivered++
		}
	}
	if b.stats != nil {
		b.stats.OnPublish(b.typeID, delivered)
	}
}

// SetTypeIdentity 设置类型的线上标识（首次写入生效）
//
// 后续以不同的非零 ID / 非空名称调用视为契约冲突：两个编译单元对
// 同一类型的线上标识不一致，返回 ErrIdentityConflict。
func (b *Broker) SetTypeIdentity(id uint32, name string) error {
	if id != 0 {
		if b.typeID != 0 && b.typeID != id {
			return fmt.Errorf("%w: typeID %#08x already set, got %#08x",
				types.ErrIdentityConflict, b.typeID, id)
		}
		b.typeID = id
	}
	if name != "" {
		if b.typeName != "" && b.typeName != name {
			return fmt.Errorf("%w: typeName %q already set, got %q",
				types.ErrIdentityConflict, b.typeName, name)
		}
		b.typeName = name
	}
	return nil
}

// TypeID 返回类型的线上标识
func (b *Broker) TypeID() uint32 {
	return b.typeID
}

// TypeName 返回类型的可读名称
func (b *Broker) TypeName() string {
	return b.typeName
}

// SubscriberCount 返回当前订阅者数
func (b *Broker) SubscriberCount() int {
	return len(b.subs)
}

// Capacity 返回订阅表容量
func (b *Broker) Capacity() int {
	return cap(b.subs)
}
