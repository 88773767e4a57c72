package sub0bus

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/sub0bus/go-sub0bus/internal/core/bridge"
	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/internal/core/wire"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              WriterBridge
// ════════════════════════════════════════════════════════════════════════════

// WriterBridge 出站桥接门面
//
// 把指定类型的本地发布透明地写入一条可写流。桥接器作为普通订阅者
// 挂到各类型上，占用对应订阅表的一个位置。
type WriterBridge struct {
	writer *wire.Writer
	outs   []*bridge.Outbound
}

// NewWriterBridge 在流上创建出站桥接
//
// typeIDs 为空时桥接当前已注册的全部类型。
func (b *Bus) NewWriterBridge(stream WritableStream, typeIDs ...uint32) (*WriterBridge, error) {
	ids, err := b.resolveTypeIDs(typeIDs)
	if err != nil {
		return nil, err
	}

	w := wire.NewWriter(stream, b.opts.proto, b.opts.stats)
	wb := &WriterBridge{writer: w}
	for _, id := range ids {
		info, br, err := b.lookupType(id)
		if err != nil {
			return nil, err
		}
		out, err := bridge.NewOutbound(info, br, w)
		if err != nil {
			return nil, err
		}
		wb.outs = append(wb.outs, out)
	}

	b.writers = append(b.writers, wb)
	return wb, nil
}

// Flush 冲刷底层流
func (wb *WriterBridge) Flush() error {
	return wb.writer.Flush()
}

// Err 返回并清空桥接累积的写入错误
//
// 发布路径上的订阅回调无错误通道，序列化或写入失败在桥接器内
// 累积，发布方在合适的时机收割。
func (wb *WriterBridge) Err() error {
	var err error
	for _, out := range wb.outs {
		err = multierr.Append(err, out.Err())
	}
	return err
}

// Close 注销所有出站桥接并冲刷流
func (wb *WriterBridge) Close() error {
	var err error
	for _, out := range wb.outs {
		err = multierr.Append(err, out.Close())
	}
	wb.outs = nil
	return multierr.Append(err, wb.writer.Close())
}

// ════════════════════════════════════════════════════════════════════════════
//                              ReaderBridge
// ════════════════════════════════════════════════════════════════════════════

// ReaderBridge 入站桥接门面
//
// 把一条可读流上的帧解码并发布到本地总线。Poll 驱动；一个桥接器
// 独占一条流与一台读取状态机。
type ReaderBridge struct {
	stream ReadableStream
	reader *wire.Reader
	ins    []*bridge.Inbound
}

// NewReaderBridge 在流上创建入站桥接
//
// typeIDs 为空时桥接当前已注册的全部类型。
func (b *Bus) NewReaderBridge(stream ReadableStream, typeIDs ...uint32) (*ReaderBridge, error) {
	ids, err := b.resolveTypeIDs(typeIDs)
	if err != nil {
		return nil, err
	}

	dir := wire.NewDirectory(b.opts.directoryCapacity)
	rb := &ReaderBridge{stream: stream}
	for _, id := range ids {
		info, br, err := b.lookupType(id)
		if err != nil {
			return nil, err
		}
		in, err := bridge.NewInbound(info, br, dir)
		if err != nil {
			return nil, err
		}
		rb.ins = append(rb.ins, in)
	}
	rb.reader = wire.NewReader(dir, b.opts.proto, b.opts.stats)

	b.readers = append(b.readers, rb)
	return rb, nil
}

// Poll 从流中拉取字节并推进读取状态机
//
// 语义与 wire.Reader.Poll 一致；入站桥接的解码/发布错误一并上报。
func (rb *ReaderBridge) Poll() (bool, error) {
	more, err := rb.reader.Poll(rb.stream)
	for _, in := range rb.ins {
		err = multierr.Append(err, in.Err())
	}
	return more, err
}

// Drain 持续 Poll 直到流中暂无完整帧
func (rb *ReaderBridge) Drain() error {
	for {
		more, err := rb.Poll()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Reset 将读取状态机恢复到初始状态（失步恢复用）
func (rb *ReaderBridge) Reset() {
	rb.reader.Reset()
}

// SyncLost 报告读取状态机是否处于失步终态
func (rb *ReaderBridge) SyncLost() bool {
	return rb.reader.SyncLost()
}

// Close 释放入站桥接
func (rb *ReaderBridge) Close() error {
	rb.ins = nil
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              内部辅助
// ════════════════════════════════════════════════════════════════════════════

// resolveTypeIDs 解析桥接的类型集合；为空时取全部已注册类型
func (b *Bus) resolveTypeIDs(typeIDs []uint32) ([]uint32, error) {
	if len(typeIDs) > 0 {
		return typeIDs, nil
	}
	ids := b.reg.TypeIDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no types registered", types.ErrUnknownType)
	}
	return ids, nil
}

// lookupType 返回类型的注册信息与 Broker
func (b *Bus) lookupType(id uint32) (broker.TypeInfo, *broker.Broker, error) {
	info, ok := b.reg.Info(id)
	if !ok {
		return broker.TypeInfo{}, nil, fmt.Errorf("%w: %#08x", types.ErrUnknownType, id)
	}
	br, err := b.reg.Broker(id)
	if err != nil {
		return broker.TypeInfo{}, nil, err
	}
	return info, br, nil
}
