package types

import "errors"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 配置类错误（构建/集成缺陷，应当中止程序）
	// ────────────────────────────────────────────────────────────────────────

	// ErrCapacityExceeded 固定容量表已满（订阅表或缓冲目录）
	ErrCapacityExceeded = errors.New("fixed capacity exceeded")

	// ErrIdentityConflict 同一类型被注册为不同的 TypeID 或名称
	ErrIdentityConflict = errors.New("type identity conflict")

	// ErrNilSubscriber 订阅者为 nil
	ErrNilSubscriber = errors.New("nil subscriber")

	// ErrNotRegistered 句柄未在表中注册
	ErrNotRegistered = errors.New("not registered")

	// ErrDuplicateSubscriber 同一订阅者被重复注册
	ErrDuplicateSubscriber = errors.New("subscriber already registered")

	// ErrUnknownType 类型未在注册表中登记
	ErrUnknownType = errors.New("unknown message type")

	// ────────────────────────────────────────────────────────────────────────
	// 运行时帧错误（线上数据完整性问题，可由调用方决定恢复策略）
	// ────────────────────────────────────────────────────────────────────────

	// ErrFraming 流内容与预期帧结构不匹配
	ErrFraming = errors.New("framing error")

	// ErrSyncLost 读取器处于失步状态，需要显式 Reset
	ErrSyncLost = errors.New("stream sync lost")

	// ────────────────────────────────────────────────────────────────────────
	// 传输错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrShortWrite 底层流未写完整个缓冲
	ErrShortWrite = errors.New("short write")
)
