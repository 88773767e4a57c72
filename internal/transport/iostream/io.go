package iostream

import (
	"bufio"
	"errors"
	"io"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// ============================================================================
// io.Reader 适配
// ============================================================================

// ReaderStream 把标准 io.Reader 适配为可读流
//
// io.EOF 被吸收为"暂无数据"并置位终止标志，使轮询式读取器可以
// 消费完最后一帧后自然停下，而不是把流结束当成读取失败。
type ReaderStream struct {
	r     *bufio.Reader
	ended bool
}

var _ interfaces.ReadableStream = (*ReaderStream)(nil)

// NewReaderStream 包装 io.Reader
func NewReaderStream(r io.Reader) *ReaderStream {
	return &ReaderStream{r: bufio.NewReader(r)}
}

// Read 读取可用字节；流已结束时返回 (0, nil)
func (s *ReaderStream) Read(p []byte) (int, error) {
	if s.ended {
		return 0, nil
	}
	n, err := s.r.Read(p)
	if errors.Is(err, io.EOF) {
		s.ended = true
		return n, nil
	}
	return n, err
}

// Discard 丢弃至多 n 个字节
func (s *ReaderStream) Discard(n int) (int, error) {
	if s.ended {
		return 0, nil
	}
	d, err := s.r.Discard(n)
	if errors.Is(err, io.EOF) {
		s.ended = true
		return d, nil
	}
	return d, err
}

// AtEnd 报告底层流是否已结束且缓冲耗尽
func (s *ReaderStream) AtEnd() bool {
	if s.r.Buffered() > 0 {
		return false
	}
	if s.ended {
		return true
	}
	// 探测一个字节以区分"暂无数据"和"流结束"
	if _, err := s.r.Peek(1); errors.Is(err, io.EOF) {
		s.ended = true
		return true
	}
	return false
}

// ============================================================================
// io.Writer 适配
// ============================================================================

// WriterStream 把标准 io.Writer 适配为可写流
//
// 内部经 bufio 缓冲，Flush 将缓冲推送到底层设备。
type WriterStream struct {
	w *bufio.Writer
}

var _ interfaces.WritableStream = (*WriterStream)(nil)

// NewWriterStream 包装 io.Writer
func NewWriterStream(w io.Writer) *WriterStream {
	return &WriterStream{w: bufio.NewWriter(w)}
}

// Write 写入字节到缓冲
func (s *WriterStream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Flush 冲刷缓冲到底层设备
func (s *WriterStream) Flush() error {
	return s.w.Flush()
}
