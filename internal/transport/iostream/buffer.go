package iostream

import "github.com/sub0bus/go-sub0bus/pkg/interfaces"

// Buffer 进程内字节队列
//
// 同时实现可读流与可写流，写入端追加、读取端消费，形成单向回环
// 管道。无内部锁：与编解码核心一致，限单线程使用。
type Buffer struct {
	data []byte
	off  int
}

var (
	_ interfaces.ReadableStream = (*Buffer)(nil)
	_ interfaces.WritableStream = (*Buffer)(nil)
)

// NewBuffer 创建空的进程内管道
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write 追加字节到队尾
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Flush 进程内管道无缓冲层，恒为成功
func (b *Buffer) Flush() error {
	return nil
}

// Read 消费队头字节；队列为空时返回 (0, nil)
func (b *Buffer) Read(p []byte) (int, error) {
	n := copy(p, b.data[b.off:])
	b.off += n
	b.compact()
	return n, nil
}

// Discard 丢弃至多 n 个队头字节
func (b *Buffer) Discard(n int) (int, error) {
	avail := len(b.data) - b.off
	if n > avail {
		n = avail
	}
	b.off += n
	b.compact()
	return n, nil
}

// AtEnd 报告队列是否已空
func (b *Buffer) AtEnd() bool {
	return b.off == len(b.data)
}

// Len 返回未消费的字节数
func (b *Buffer) Len() int {
	return len(b.data) - b.off
}

// Bytes 返回未消费字节的只读视图
func (b *Buffer) Bytes() []byte {
	return b.data[b.off:]
}

// compact 队列读空后回收底层存储
func (b *Buffer) compact() {
	if b.off == len(b.data) {
		b.data = b.data[:0]
		b.off = 0
	}
}
