package wire

import (
	"bytes"
	"fmt"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/lib/log"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

var logger = log.Logger("core/wire")

// ============================================================================
// 状态机
// ============================================================================

// state 读取器状态
type state uint8

const (
	statePrefix  state = iota // 读取帧前缀标记（可选）
	stateHeader               // 读取消息头
	stateData                 // 读取负载
	statePostfix              // 读取帧后缀标记（可选）
	stateSyncLost             // 失步终态：需要显式 Reset
)

// cursor 当前状态的读取游标
type cursor struct {
	buf     []byte // 目标缓冲，len 为该状态的预期字节数
	filled  int    // 已填充字节数
	padding int    // 缓冲之后待丢弃的尾部字节数
}

// ============================================================================
// Reader
// ============================================================================

// Reader 可续传的帧读取状态机
//
// 通过反复调用 Poll 驱动；每次调用读取传输当前可用的字节数，
// 数据不足时原地挂起（以返回值表达，而非阻塞），下次调用从断点
// 继续。同一时刻只有一个在途帧，帧按线上顺序完成。
type Reader struct {
	dir   *Directory
	proto Protocol
	stats interfaces.StatsReporter

	st      state
	cur     cursor
	pending func() // 数据落地后、整帧验证通过时触发的完成能力

	// 各定长状态的暂存缓冲，构造时一次性分配
	prefixBuf  []byte
	headerBuf  []byte
	postfixBuf []byte

	header     types.Header // 最近解码的消息头
	frameBytes int          // 当前帧累计字节数
}

// NewReader 创建帧读取器
//
// dir 提供"消息头 → 落地缓冲与完成能力"的路由。Reader 独占 dir 的
// 使用权，不应跨线程共享。
func NewReader(dir *Directory, proto Protocol, stats interfaces.StatsReporter) *Reader {
	r := &Reader{
		dir:        dir,
		proto:      proto,
		stats:      stats,
		prefixBuf:  make([]byte, len(proto.Prefix)),
		headerBuf:  make([]byte, headerWireSize),
		postfixBuf: make([]byte, len(proto.Postfix)),
	}
	r.Reset()
	return r
}

// Poll 从流中拉取字节并推进状态机
//
// 返回 true 表示刚越过一个新的帧边界（进入新的 Header 状态），
// 继续 Poll 可能产出更多完整帧；返回 false 表示需要更多输入。
// 完成回调恰好在整帧（含尾部分隔符）验证通过后触发一次。
//
// 帧结构校验失败使读取器进入失步终态并返回帧错误；此后 Poll 持续
// 返回 ErrSyncLost，直到显式调用 Reset。流的重新同步策略由调用方
// 决定，核心不自动恢复。
func (r *Reader) Poll(stream interfaces.ReadableStream) (bool, error) {
	if r.st == stateSyncLost {
		return false, fmt.Errorf("%w: explicit reset required", types.ErrSyncLost)
	}
	for {
		advanced, err := r.step(stream)
		if err != nil {
			return false, err
		}
		if !advanced {
			return false, nil
		}
		if r.st == stateHeader {
			return true, nil
		}
	}
}

// Reset 将读取器恢复到初始状态（等待下一帧前缀）
//
// 用于失步后的外部恢复：调用方先对流执行自己的重新同步策略
// （如扫描下一个前缀），再 Reset 继续读取。
func (r *Reader) Reset() {
	r.st = statePrefix
	r.cur = cursor{buf: r.prefixBuf}
	r.pending = nil
	r.frameBytes = 0
}

// SyncLost 报告读取器是否处于失步终态
func (r *Reader) SyncLost() bool {
	return r.st == stateSyncLost
}

// step 推进一个状态：填充游标、丢弃填充字节、完成状态校验与转移
//
// 返回 advanced=false 表示传输暂无更多数据，状态保持不变。
func (r *Reader) step(stream interfaces.ReadableStream) (bool, error) {
	for r.cur.filled < len(r.cur.buf) {
		n, err := stream.Read(r.cur.buf[r.cur.filled:])
		if err != nil {
			return false, fmt.Errorf("read stream: %w", err)
		}
		if n == 0 {
			return false, nil
		}
		r.cur.filled += n
		r.frameBytes += n
	}

	// 丢弃尾部填充（跳过语义，不落地）：允许负载跨协议版本增长
	// 而不破坏旧读取器
	for r.cur.padding > 0 {
		n, err := stream.Discard(r.cur.padding)
		if err != nil {
			return false, fmt.Errorf("discard padding: %w", err)
		}
		if n == 0 {
			return false, nil
		}
		r.cur.padding -= n
		r.frameBytes += n
	}

	if err := r.completeState(); err != nil {
		return false, err
	}
	return true, nil
}

// completeState 执行当前状态的完成校验并转移到下一状态
func (r *Reader) completeState() error {
	switch r.st {
	case statePrefix:
		if !bytes.Equal(r.prefixBuf, r.proto.Prefix) {
			return r.syncLost(fmt.Errorf("%w: got %x, want %x",
				ErrPrefixMismatch, r.prefixBuf, r.proto.Prefix))
		}
		r.st = stateHeader
		r.cur = cursor{buf: r.headerBuf}

	case stateHeader:
		h, err := types.DecodeHeader(r.headerBuf)
		if err != nil {
			return r.syncLost(err)
		}
		r.header = h
		desc := r.dir.Find(h)
		if !r.dir.Validate(h) || desc.Absent() {
			// 未知类型无法得知负载长度，不能猜测跳过距离
			return r.syncLost(fmt.Errorf("%w: %s", ErrUnknownHeader, h))
		}
		r.pending = desc.Complete
		r.st = stateData
		r.cur = cursor{buf: desc.Buf, filled: 0, padding: desc.Padding}

	case stateData:
		// 负载是不透明字节，始终有效
		if len(r.proto.Postfix) == 0 {
			r.finishFrame()
		} else {
			r.st = statePostfix
			r.cur = cursor{buf: r.postfixBuf}
		}

	case statePostfix:
		if !bytes.Equal(r.postfixBuf, r.proto.Postfix) {
			return r.syncLost(fmt.Errorf("%w: got %x, want %x",
				ErrPostfixMismatch, r.postfixBuf, r.proto.Postfix))
		}
		r.finishFrame()
	}
	return nil
}

// finishFrame 整帧验证通过：触发完成能力并回到前缀状态
//
// 发布副作用只在此处触发，保证订阅者绝不会看到帧完整性未经确认
// 的负载。
func (r *Reader) finishFrame() {
	if r.pending != nil {
		r.pending()
	}
	if r.stats != nil {
		r.stats.OnFrameRead(r.header.TypeID, r.frameBytes)
	}
	r.pending = nil
	r.frameBytes = 0
	r.st = statePrefix
	r.cur = cursor{buf: r.prefixBuf}
}

// syncLost 进入失步终态并返回包装后的帧错误
func (r *Reader) syncLost(cause error) error {
	r.st = stateSyncLost
	r.cur = cursor{}
	r.pending = nil
	if r.stats != nil {
		r.stats.OnFramingError()
	}
	logger.Warn("帧同步丢失",
		"cause", cause,
		"typeID", r.header.TypeID)
	return fmt.Errorf("%w: %w", types.ErrFraming, cause)
}
