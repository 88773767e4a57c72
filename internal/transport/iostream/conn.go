package iostream

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// DefaultPollTimeout 单次轮询读取允许等待的时长
const DefaultPollTimeout = time.Millisecond

// ConnStream 把 net.Conn 适配为帧读写流
//
// 读取侧用短读超时把阻塞式套接字变成轮询式：超时当作"暂无数据"
// 返回 (0, nil)，对端关闭则置位终止标志。写入侧直写套接字，
// 内核缓冲承担合并职责。
type ConnStream struct {
	conn    net.Conn
	timeout time.Duration
	scratch [256]byte // Discard 复用缓冲
	ended   bool
}

var (
	_ interfaces.ReadableStream = (*ConnStream)(nil)
	_ interfaces.WritableStream = (*ConnStream)(nil)
)

// NewConnStream 包装网络连接；timeout 非正时使用默认轮询时长
func NewConnStream(conn net.Conn, timeout time.Duration) *ConnStream {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	return &ConnStream{conn: conn, timeout: timeout}
}

// Read 读取可用字节；等待超时或连接已结束时返回 (0, nil)
func (s *ConnStream) Read(p []byte) (int, error) {
	if s.ended {
		return 0, nil
	}
	if err := s.conn.SetReadDeadline(time.Now().Add(s.timeout)); err != nil {
		return 0, err
	}
	n, err := s.conn.Read(p)
	switch {
	case err == nil:
		return n, nil
	case isTimeout(err):
		return n, nil
	case errors.Is(err, io.EOF):
		s.ended = true
		return n, nil
	default:
		return n, err
	}
}

// Discard 丢弃至多 n 个字节
func (s *ConnStream) Discard(n int) (int, error) {
	limit := n
	if limit > len(s.scratch) {
		limit = len(s.scratch)
	}
	return s.Read(s.scratch[:limit])
}

// AtEnd 报告对端是否已关闭连接
func (s *ConnStream) AtEnd() bool {
	return s.ended
}

// Write 直写套接字
func (s *ConnStream) Write(p []byte) (int, error) {
	return s.conn.Write(p)
}

// Flush 套接字无用户态缓冲，恒为成功
func (s *ConnStream) Flush() error {
	return nil
}

// Close 关闭底层连接
func (s *ConnStream) Close() error {
	return s.conn.Close()
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
