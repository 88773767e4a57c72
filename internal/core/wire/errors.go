package wire

import "errors"

// 帧协议错误定义
var (
	// ErrPrefixMismatch 前缀标记与协议常量不一致
	ErrPrefixMismatch = errors.New("prefix mismatch")

	// ErrPostfixMismatch 后缀分隔符与协议常量不一致
	ErrPostfixMismatch = errors.New("postfix mismatch")

	// ErrUnknownHeader 消息头未被缓冲目录识别
	//
	// 未知类型无法推断负载长度，不能猜测跳过距离，视为致命帧错误。
	ErrUnknownHeader = errors.New("unrecognized header")

	// ErrPayloadSizeMismatch 负载长度与写入数据不一致
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
)
