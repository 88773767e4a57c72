package wire

// Protocol 帧的定界配置
//
// Prefix/Postfix 为空表示协议不含对应标记，读取器会即时跳过该状态。
type Protocol struct {
	// Prefix 帧前缀标记（如 4 字节魔数）
	Prefix []byte
	// Postfix 帧后缀标记（如同步分隔符）
	Postfix []byte
}

// 默认协议常量
var (
	// DefaultPrefix 默认帧前缀魔数 "SUB0"
	DefaultPrefix = []byte{'S', 'U', 'B', '0'}
	// DefaultPostfix 默认帧后缀分隔符
	DefaultPostfix = []byte{'\n'}
)

// DefaultProtocol 返回默认协议（"SUB0" 前缀 + '\n' 后缀）
func DefaultProtocol() Protocol {
	return Protocol{
		Prefix:  DefaultPrefix,
		Postfix: DefaultPostfix,
	}
}

// Bare 返回无前后缀的裸协议（仅消息头 + 负载）
func Bare() Protocol {
	return Protocol{}
}

// FrameOverhead 返回除负载外每帧的固定字节数
func (p Protocol) FrameOverhead() int {
	return len(p.Prefix) + headerWireSize + len(p.Postfix)
}
