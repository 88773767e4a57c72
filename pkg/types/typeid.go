package types

import "github.com/spaolacci/murmur3"

// DeriveTypeID 由类型名派生稳定的 TypeID
//
// 当调用方未显式指定 TypeID 时使用。派生值在进程间稳定，
// 前提是双方对同一消息类型使用相同的名字。
func DeriveTypeID(name string) uint32 {
	return murmur3.Sum32([]byte(name))
}

// FourCC 将 4 个字符打包为一个 uint32（小端序）
//
// 用于构造协议魔数，例如 FourCC('S','U','B','0')。
func FourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}
