package iostream

import (
	"bytes"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferReadWrite(t *testing.T) {
	b := NewBuffer()
	assert.True(t, b.AtEnd())

	_, err := b.Write([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, b.Len())
	assert.False(t, b.AtEnd())

	p := make([]byte, 2)
	n, err := b.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{1, 2}, p)

	// 空队列读取返回 (0, nil) 而非阻塞或报错
	n, err = b.Read(make([]byte, 8))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = b.Read(make([]byte, 8))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, b.AtEnd())
}

func TestBufferDiscard(t *testing.T) {
	b := NewBuffer()
	_, err := b.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	n, err := b.Discard(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// 丢弃量超过存量时按存量截断
	n, err = b.Discard(10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, b.AtEnd())
}

func TestReaderStreamAbsorbsEOF(t *testing.T) {
	s := NewReaderStream(bytes.NewReader([]byte{1, 2, 3}))

	p := make([]byte, 8)
	n, err := s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// 流结束表达为 (0, nil) + AtEnd
	n, err = s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, s.AtEnd())
}

func TestReaderStreamDiscard(t *testing.T) {
	s := NewReaderStream(bytes.NewReader([]byte{1, 2, 3, 4}))

	n, err := s.Discard(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p := make([]byte, 2)
	n, err = s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(4), p[0])
}

func TestWriterStreamFlush(t *testing.T) {
	var sink bytes.Buffer
	s := NewWriterStream(&sink)

	_, err := s.Write([]byte("frame"))
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	assert.Equal(t, "frame", sink.String())
}

func TestWebSocketStreamRoundTrip(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// 回显二进制消息
		for {
			kind, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if kind == websocket.BinaryMessage {
				if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
					return
				}
			}
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	s := NewWebSocketStream(conn)
	_, err = s.Write([]byte{1, 2})
	require.NoError(t, err)
	_, err = s.Write([]byte{3})
	require.NoError(t, err)
	// Flush 把两次写入聚合为一条消息
	require.NoError(t, s.Flush())

	got := make([]byte, 0, 3)
	for len(got) < 3 {
		p := make([]byte, 3)
		n, err := s.Read(p)
		require.NoError(t, err)
		got = append(got, p[:n]...)
	}
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestConnStreamPolling(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	s := NewConnStream(client, 5*time.Millisecond)

	// 无数据时在超时内返回 (0, nil)
	n, err := s.Read(make([]byte, 4))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	go func() {
		_, _ = server.Write([]byte{0xAB, 0xCD})
	}()

	got := make([]byte, 0, 2)
	deadline := time.Now().Add(time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		p := make([]byte, 2)
		n, err := s.Read(p)
		require.NoError(t, err)
		got = append(got, p[:n]...)
	}
	assert.Equal(t, []byte{0xAB, 0xCD}, got)
}
