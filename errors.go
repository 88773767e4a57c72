package sub0bus

import "github.com/sub0bus/go-sub0bus/pkg/types"

// 公共错误定义（转发 pkg/types 的哨兵，便于调用方 errors.Is 判定）
var (
	// ────────────────────────────────────────────────────────────────────────
	// 注册/配置错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrCapacityExceeded 订阅表或缓冲目录已满
	ErrCapacityExceeded = types.ErrCapacityExceeded

	// ErrIdentityConflict 类型标识与已注册值冲突
	ErrIdentityConflict = types.ErrIdentityConflict

	// ErrNilSubscriber 订阅者为 nil
	ErrNilSubscriber = types.ErrNilSubscriber

	// ErrDuplicateSubscriber 订阅者重复注册
	ErrDuplicateSubscriber = types.ErrDuplicateSubscriber

	// ErrNotRegistered 订阅者/句柄未注册或已关闭
	ErrNotRegistered = types.ErrNotRegistered

	// ErrUnknownType 类型未注册
	ErrUnknownType = types.ErrUnknownType

	// ────────────────────────────────────────────────────────────────────────
	// 帧协议错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrFraming 帧结构校验失败（前缀/后缀/消息头）
	ErrFraming = types.ErrFraming

	// ErrSyncLost 读取器处于失步终态，需要显式 Reset
	ErrSyncLost = types.ErrSyncLost

	// ErrShortWrite 底层流未写满
	ErrShortWrite = types.ErrShortWrite
)
