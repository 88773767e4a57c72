package wire

import (
	"fmt"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// ============================================================================
// Writer
// ============================================================================

// Writer 将消息序列化为完整帧写入可写流
//
// 一次 WriteFrame 依序写出前缀、消息头、负载和后缀；四段全部成功
// 才算成功，底层任何一段失败都使整帧失败并上报给调用方（写入器
// 自身从不在线上留下残帧——残帧的判定交给对端读取器）。
type Writer struct {
	stream  interfaces.WritableStream
	proto   Protocol
	stats   interfaces.StatsReporter
	scratch []byte // 消息头编码复用缓冲
}

// NewWriter 创建帧写入器
func NewWriter(stream interfaces.WritableStream, proto Protocol, stats interfaces.StatsReporter) *Writer {
	return &Writer{
		stream:  stream,
		proto:   proto,
		stats:   stats,
		scratch: make([]byte, 0, headerWireSize),
	}
}

// WriteFrame 写出一帧
//
// payload 长度必须与 h.PayloadBytes 一致。
func (w *Writer) WriteFrame(h types.Header, payload []byte) error {
	if int(h.PayloadBytes) != len(payload) {
		return fmt.Errorf("%w: header declares %d bytes, payload has %d",
			ErrPayloadSizeMismatch, h.PayloadBytes, len(payload))
	}

	if err := w.writeAll(w.proto.Prefix); err != nil {
		return fmt.Errorf("write prefix: %w", err)
	}
	w.scratch = h.AppendBinary(w.scratch[:0])
	if err := w.writeAll(w.scratch); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.writeAll(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	if err := w.writeAll(w.proto.Postfix); err != nil {
		return fmt.Errorf("write postfix: %w", err)
	}

	if w.stats != nil {
		w.stats.OnFrameWritten(h.TypeID, w.proto.FrameOverhead()+len(payload))
	}
	return nil
}

// Flush 将缓冲数据推送到底层设备
func (w *Writer) Flush() error {
	return w.stream.Flush()
}

// Close 冲刷并关闭写入器
func (w *Writer) Close() error {
	return w.stream.Flush()
}

// writeAll 写入全部字节，短写视为整帧失败
func (w *Writer) writeAll(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.stream.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("%w: %d of %d bytes", types.ErrShortWrite, n, len(p))
	}
	return nil
}
