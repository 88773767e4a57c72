package broker

import (
	"fmt"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// ============================================================================
// 类型注册表
// ============================================================================

// TypeInfo 一个消息类型的注册信息
//
// 在进程启动时登记一次，之后不可变。
type TypeInfo struct {
	// ID 线上类型标识（非零）
	ID uint32
	// Name 可读类型名（用于诊断与跨进程核对）
	Name string
	// Size 负载的固定线上字节数
	Size int
	// New 构造解码目标的工厂，返回指向零值的指针
	//
	// 仅入站桥接需要；纯进程内使用可为 nil。
	New func() any
}

// Header 返回该类型的线协议头
func (ti TypeInfo) Header() types.Header {
	return types.Header{TypeID: ti.ID, PayloadBytes: uint32(ti.Size)}
}

// Registry 持有全部已知类型的 Broker 实例
//
// 每个类型标签对应一个 Broker，在注册时创建并与该类型绑定，
// 之后通过引用传递给所有发布者/订阅者。
type Registry struct {
	brokers       map[uint32]*Broker
	infos         map[uint32]TypeInfo
	subscriberCap int
	stats         interfaces.StatsReporter
}

// NewRegistry 创建类型注册表
func NewRegistry(opts ...Option) *Registry {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Registry{
		brokers:       make(map[uint32]*Broker),
		infos:         make(map[uint32]TypeInfo),
		subscriberCap: s.subscriberCapacity,
		stats:         s.stats,
	}
}

// RegisterType 登记一个消息类型并创建其 Broker
//
// 重复登记完全一致的 TypeInfo 是幂等的（返回已有 Broker）；
// 同一 ID 携带不同名称或尺寸时返回 ErrIdentityConflict。
func (r *Registry) RegisterType(info TypeInfo) (*Broker, error) {
	if info.ID == 0 {
		return nil, fmt.Errorf("%w: typeID must be non-zero", types.ErrIdentityConflict)
	}
	if info.Size < 0 {
		return nil, fmt.Errorf("%w: negative payload size for type %q", types.ErrIdentityConflict, info.Name)
	}

	if existing, ok := r.infos[info.ID]; ok {
		if existing.Name != info.Name || existing.Size != info.Size {
			return nil, fmt.Errorf("%w: type %#08x registered as %q/%d bytes, got %q/%d bytes",
				types.ErrIdentityConflict,
				info.ID, existing.Name, existing.Size, info.Name, info.Size)
		}
		return r.brokers[info.ID], nil
	}

	b := newBroker(r.subscriberCap, r.stats)
	if err := b.SetTypeIdentity(info.ID, info.Name); err != nil {
		return nil, err
	}
	r.brokers[info.ID] = b
	r.infos[info.ID] = info

	logger.Debug("类型已注册",
		"typeID", info.ID,
		"typeName", info.Name,
		"payloadBytes", info.Size)
	return b, nil
}

// Broker 返回指定类型标签的 Broker
func (r *Registry) Broker(typeID uint32) (*Broker, error) {
	b, ok := r.brokers[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %#08x", types.ErrUnknownType, typeID)
	}
	return b, nil
}

// Info 返回指定类型标签的注册信息
func (r *Registry) Info(typeID uint32) (TypeInfo, bool) {
	info, ok := r.infos[typeID]
	return info, ok
}

// TypeIDs 返回所有已注册的类型标签
func (r *Registry) TypeIDs() []uint32 {
	ids := make([]uint32, 0, len(r.infos))
	for id := range r.infos {
		ids = append(ids, id)
	}
	return ids
}
