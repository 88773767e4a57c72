package wire

import (
	"fmt"
	"sort"

	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// headerWireSize 消息头的线上字节数
const headerWireSize = types.HeaderSize

// DefaultDirectoryCapacity 缓冲目录的默认容量
const DefaultDirectoryCapacity = 64

// ============================================================================
// Descriptor
// ============================================================================

// Descriptor 落地缓冲描述符
//
// 目录不持有缓冲的所有权：Buf 指向注册方（通常是入站桥接适配器）
// 私有的缓冲区。Buf 为 nil 表示"不支持该类型"。
type Descriptor struct {
	// Buf 落地缓冲；nil 表示类型不受支持
	Buf []byte
	// Padding 缓冲之后需要丢弃的尾部字节数
	//
	// 用于协议版本前向兼容：负载增长时旧读取器丢弃多出的尾部。
	Padding int
	// Complete 缓冲填满且整帧验证通过后调用的完成能力
	Complete func()
}

// Absent 报告描述符是否为"不支持/未知类型"哨兵
func (d Descriptor) Absent() bool {
	return d.Buf == nil
}

// ============================================================================
// Directory
// ============================================================================

// Directory 缓冲目录
//
// 按 Header 排序的 (Header, Descriptor) 固定容量关联表。
// 有序插入（而非追加后排序）保证查找为对数复杂度。
// 不变量：任意两个表项的 TypeID 互不相同。
type Directory struct {
	entries []entry // 一次性分配，按 TypeID 升序
}

type entry struct {
	header types.Header
	desc   Descriptor
}

// NewDirectory 创建指定容量的目录；非正容量回退为默认值
func NewDirectory(capacity int) *Directory {
	if capacity <= 0 {
		capacity = DefaultDirectoryCapacity
	}
	return &Directory{
		entries: make([]entry, 0, capacity),
	}
}

// Upsert 插入或覆盖一个表项
//
// 已存在相同 TypeID 的表项时整体覆盖（更新，而非重复插入）；
// 否则在保持排序的位置插入，容量耗尽时返回 ErrCapacityExceeded。
func (d *Directory) Upsert(h types.Header, desc Descriptor) error {
	i := d.lowerBound(h.TypeID)
	if i < len(d.entries) && d.entries[i].header.TypeID == h.TypeID {
		d.entries[i] = entry{header: h, desc: desc}
		return nil
	}
	if len(d.entries) == cap(d.entries) {
		return fmt.Errorf("%w: buffer directory full (capacity %d)",
			types.ErrCapacityExceeded, cap(d.entries))
	}
	d.entries = append(d.entries, entry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = entry{header: h, desc: desc}
	return nil
}

// Find 按消息头查找描述符
//
// 未命中（或 TypeID 命中但 PayloadBytes 不一致）时返回零值描述符，
// 调用方须将 Absent 的描述符视为"未知类型，无法落地该帧"。
func (d *Directory) Find(h types.Header) Descriptor {
	i := d.lowerBound(h.TypeID)
	if i < len(d.entries) && d.entries[i].header.Equal(h) {
		return d.entries[i].desc
	}
	return Descriptor{}
}

// Validate 消息头接受规则的扩展点
//
// 默认接受任何内容，实际的接受/拒绝由 Find 的命中与否实现。
func (d *Directory) Validate(types.Header) bool {
	return true
}

// Len 返回当前表项数
func (d *Directory) Len() int {
	return len(d.entries)
}

// Capacity 返回目录容量
func (d *Directory) Capacity() int {
	return cap(d.entries)
}

// lowerBound 返回第一个 TypeID >= id 的下标
func (d *Directory) lowerBound(id uint32) int {
	return sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].header.TypeID >= id
	})
}
