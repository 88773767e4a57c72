package broker

import (
	"fmt"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// ============================================================================
// Subscription 句柄
// ============================================================================

// Subscription 订阅句柄
//
// 生命周期界定注册区间：Subscribe 即注册，Close 即注销。
type Subscription struct {
	broker *Broker
	sub    interfaces.Subscriber
	closed bool
}

// Subscribe 注册订阅者并返回其句柄
func (b *Broker) Subscribe(s interfaces.Subscriber) (*Subscription, error) {
	if err := b.Register(s); err != nil {
		return nil, err
	}
	return &Subscription{broker: b, sub: s}, nil
}

// Close 将订阅者从订阅表中移除
//
// 重复 Close 返回 ErrNotRegistered。
func (s *Subscription) Close() error {
	if s.closed {
		return fmt.Errorf("%w: subscription already closed", types.ErrNotRegistered)
	}
	s.closed = true
	return s.broker.Unregister(s.sub)
}

// ============================================================================
// Publisher 句柄
// ============================================================================

// Publisher 发布句柄
//
// 发布端目前无需注册表项，句柄仅承载存在性与类型绑定。
type Publisher struct {
	broker *Broker
	closed bool
}

// Publisher 返回绑定到该 Broker 的发布句柄
func (b *Broker) Publisher() *Publisher {
	logger.Debug("新增发布者",
		"typeID", b.typeID,
		"typeName", b.typeName)
	return &Publisher{broker: b}
}

// Publish 将数据同步分发给当前注册的所有订阅者
func (p *Publisher) Publish(data any) error {
	if p.closed {
		return fmt.Errorf("%w: publisher closed", types.ErrNotRegistered)
	}
	p.broker.Publish(data)
	return nil
}

// TypeID 返回发布类型的线上标识
func (p *Publisher) TypeID() uint32 {
	return p.broker.TypeID()
}

// Close 释放发布句柄
//
// 重复 Close 返回 ErrNotRegistered（与 Subscription.Close 一致）。
func (p *Publisher) Close() error {
	if p.closed {
		return fmt.Errorf("%w: publisher already closed", types.ErrNotRegistered)
	}
	p.closed = true
	return nil
}

// 接口契约检查
var (
	_ interfaces.Subscription = (*Subscription)(nil)
	_ interfaces.Publisher    = (*Publisher)(nil)
)
