package types

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize Header 的线上字节数（typeId:uint32 + payloadBytes:uint32）
const HeaderSize = 8

// Header 线协议消息头
//
// 标识一条消息在线上的类型与负载长度。同一消息类型的 Header
// 在构造后不可变：TypeID 跨进程/跨构建稳定，PayloadBytes 由类型固定。
type Header struct {
	// TypeID 消息类型标识（用户指定或由类型名派生）
	TypeID uint32
	// PayloadBytes 头部之后的负载字节数
	PayloadBytes uint32
}

// Less 仅按 TypeID 排序
func (h Header) Less(rhs Header) bool {
	return h.TypeID < rhs.TypeID
}

// Equal 完全相等（TypeID 与 PayloadBytes 均须一致）
func (h Header) Equal(rhs Header) bool {
	return h.TypeID == rhs.TypeID && h.PayloadBytes == rhs.PayloadBytes
}

// AppendBinary 以小端序追加 8 字节线上形式
func (h Header) AppendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, h.TypeID)
	b = binary.LittleEndian.AppendUint32(b, h.PayloadBytes)
	return b
}

// DecodeHeader 从小端序字节解码 Header
//
// buf 长度不足 HeaderSize 时返回错误。
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("header requires %d bytes, got %d", HeaderSize, len(buf))
	}
	return Header{
		TypeID:       binary.LittleEndian.Uint32(buf[0:4]),
		PayloadBytes: binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}

// String 诊断输出
func (h Header) String() string {
	return fmt.Sprintf("Header{type=%#08x bytes=%d}", h.TypeID, h.PayloadBytes)
}
