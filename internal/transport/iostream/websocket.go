package iostream

import (
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

// WebSocketStream 把 gorilla/websocket 连接适配为帧读写流
//
// 写入侧把两次 Flush 之间的字节聚合为一条二进制消息，借消息边界
// 天然对齐帧边界；读取侧把收到的二进制消息按字节逐步供给读取器,
// 跨消息续传由读取器自身的状态机保证。
type WebSocketStream struct {
	conn  *websocket.Conn
	out   []byte // 待发送的聚合缓冲
	in    []byte // 当前入站消息的未消费部分
	err   error  // 拉取时捕获的连接错误，下一次读取交付
	ended bool
}

var (
	_ interfaces.ReadableStream = (*WebSocketStream)(nil)
	_ interfaces.WritableStream = (*WebSocketStream)(nil)
)

// NewWebSocketStream 包装 WebSocket 连接
func NewWebSocketStream(conn *websocket.Conn) *WebSocketStream {
	return &WebSocketStream{conn: conn}
}

// Write 追加字节到出站聚合缓冲
func (s *WebSocketStream) Write(p []byte) (int, error) {
	s.out = append(s.out, p...)
	return len(p), nil
}

// Flush 把聚合缓冲作为一条二进制消息发出
func (s *WebSocketStream) Flush() error {
	if len(s.out) == 0 {
		return nil
	}
	if err := s.conn.WriteMessage(websocket.BinaryMessage, s.out); err != nil {
		return fmt.Errorf("write websocket message: %w", err)
	}
	s.out = s.out[:0]
	return nil
}

// Read 供给当前消息的字节；无在途消息时拉取下一条
//
// 拉取会阻塞到下一条消息到达或连接关闭；需要非阻塞轮询的场景
// 应在外层为连接配置读超时。
func (s *WebSocketStream) Read(p []byte) (int, error) {
	if len(s.in) == 0 && !s.pull() {
		return 0, s.pullErr()
	}
	n := copy(p, s.in)
	s.in = s.in[n:]
	return n, nil
}

// Discard 丢弃至多 n 个字节
func (s *WebSocketStream) Discard(n int) (int, error) {
	if len(s.in) == 0 && !s.pull() {
		return 0, s.pullErr()
	}
	if n > len(s.in) {
		n = len(s.in)
	}
	s.in = s.in[n:]
	return n, nil
}

// AtEnd 报告连接是否已关闭且入站字节耗尽
func (s *WebSocketStream) AtEnd() bool {
	return s.ended && len(s.in) == 0
}

// Close 关闭底层连接
func (s *WebSocketStream) Close() error {
	return s.conn.Close()
}

// pull 拉取下一条二进制消息；返回是否取得了新字节
func (s *WebSocketStream) pull() bool {
	if s.ended {
		return false
	}
	for {
		kind, data, err := s.conn.ReadMessage()
		if err != nil {
			s.ended = true
			if !isWebSocketClose(err) {
				s.err = err
			}
			return false
		}
		if kind != websocket.BinaryMessage {
			continue // 文本/控制消息不属于帧协议，跳过
		}
		s.in = data
		return len(data) > 0
	}
}

func (s *WebSocketStream) pullErr() error {
	err := s.err
	s.err = nil
	return err
}

func isWebSocketClose(err error) bool {
	var ce *websocket.CloseError
	return errors.As(err, &ce)
}
