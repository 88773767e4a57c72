package sub0bus

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/lib/log"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

var logger = log.Logger("sub0bus")

// Bus 类型索引的进程内消息总线
//
// 所有方法限单线程使用（或由调用方自行串行化）；发布在调用线程内
// 同步分发完成。
type Bus struct {
	reg     *broker.Registry
	opts    options
	writers []*WriterBridge
	readers []*ReaderBridge
}

// New 创建消息总线
func New(opts ...Option) (*Bus, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	reg := broker.NewRegistry(
		broker.WithSubscriberCapacity(o.subscriberCapacity),
		broker.WithStats(o.stats),
	)
	return newBus(reg, o), nil
}

// newBus 在已构建的注册表上装配总线（Fx 装配路径复用）
func newBus(reg *broker.Registry, o options) *Bus {
	return &Bus{reg: reg, opts: o}
}

// RegisterType 注册一个消息类型并返回其 TypeID
//
// prototype 提供类型样本（零值即可），其线上尺寸由字段布局决定，
// 必须是 encoding/binary 意义上的定长类型。id 为 0 时由 name 派生；
// name 为空时取 Go 类型名。重复注册完全一致的类型是幂等的。
func (b *Bus) RegisterType(id uint32, name string, prototype any) (uint32, error) {
	rt := reflect.TypeOf(prototype)
	if rt == nil {
		return 0, fmt.Errorf("%w: nil prototype", types.ErrUnknownType)
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	size := binary.Size(reflect.New(rt).Elem().Interface())
	if size < 0 {
		return 0, fmt.Errorf("type %s has no fixed wire size", rt)
	}

	if name == "" {
		name = rt.String()
	}
	if id == 0 {
		id = types.DeriveTypeID(name)
	}

	_, err := b.reg.RegisterType(broker.TypeInfo{
		ID:   id,
		Name: name,
		Size: size,
		New:  func() any { return reflect.New(rt).Interface() },
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Subscribe 为指定类型注册订阅者，返回订阅句柄
func (b *Bus) Subscribe(typeID uint32, s interfaces.Subscriber) (Subscription, error) {
	br, err := b.reg.Broker(typeID)
	if err != nil {
		return nil, err
	}
	return br.Subscribe(s)
}

// SubscribeFunc 以回调函数订阅指定类型
func (b *Bus) SubscribeFunc(typeID uint32, fn func(data any)) (Subscription, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil callback", types.ErrNilSubscriber)
	}
	return b.Subscribe(typeID, &interfaces.SubscriberFunc{OnReceive: fn})
}

// Publisher 返回绑定到指定类型的发布句柄
func (b *Bus) Publisher(typeID uint32) (Publisher, error) {
	br, err := b.reg.Broker(typeID)
	if err != nil {
		return nil, err
	}
	return br.Publisher(), nil
}

// Publish 将数据同步分发给指定类型的所有订阅者
func (b *Bus) Publish(typeID uint32, data any) error {
	br, err := b.reg.Broker(typeID)
	if err != nil {
		return err
	}
	br.Publish(data)
	return nil
}

// TypeIDs 返回所有已注册的类型标识
func (b *Bus) TypeIDs() []uint32 {
	return b.reg.TypeIDs()
}

// Close 关闭总线：注销并冲刷所有桥接器
func (b *Bus) Close() error {
	var err error
	for _, wb := range b.writers {
		err = multierr.Append(err, wb.Close())
	}
	for _, rb := range b.readers {
		err = multierr.Append(err, rb.Close())
	}
	b.writers = nil
	b.readers = nil

	logger.Debug("总线已关闭", "err", err)
	return err
}
