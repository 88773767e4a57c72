package sub0bus

import (
	"github.com/sub0bus/go-sub0bus/internal/core/wire"
	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "Sub0Bus " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Header 线协议消息头
type Header = types.Header

// Protocol 帧定界配置
type Protocol = wire.Protocol

// Subscriber 消息订阅者接口
type Subscriber = interfaces.Subscriber

// Subscription 订阅句柄
type Subscription = interfaces.Subscription

// Publisher 发布句柄
type Publisher = interfaces.Publisher

// SubscriberFunc 闭包形式的订阅者
type SubscriberFunc = interfaces.SubscriberFunc

// ReadableStream 可读字节流
type ReadableStream = interfaces.ReadableStream

// WritableStream 可写字节流
type WritableStream = interfaces.WritableStream

// StatsReporter 运行统计上报接口
type StatsReporter = interfaces.StatsReporter

// DefaultProtocol 返回默认帧协议（"SUB0" 前缀 + '\n' 后缀）
func DefaultProtocol() Protocol {
	return wire.DefaultProtocol()
}

// BareProtocol 返回无前后缀的裸协议
func BareProtocol() Protocol {
	return wire.Bare()
}

// DeriveTypeID 由类型名派生稳定的 TypeID
func DeriveTypeID(name string) uint32 {
	return types.DeriveTypeID(name)
}
