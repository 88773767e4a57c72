package interfaces

// ReadableStream 可读字节流
//
// Read 不得阻塞等待超过"当前无数据"：没有可用字节时返回 (0, nil)。
type ReadableStream interface {
	// Read 读取至多 len(p) 字节，返回实际读取数
	Read(p []byte) (int, error)

	// Discard 丢弃至多 n 字节，返回实际丢弃数
	Discard(n int) (int, error)

	// AtEnd 报告流是否已结束
	AtEnd() bool
}

// WritableStream 可写字节流
type WritableStream interface {
	// Write 写入 p，返回实际写入数；n < len(p) 时必须返回非 nil 错误
	Write(p []byte) (int, error)

	// Flush 将缓冲数据推送到底层设备
	Flush() error
}

// StatsReporter 运行统计上报接口
//
// 所有方法都必须是非阻塞的；实现为 nil 时各组件跳过上报。
type StatsReporter interface {
	// OnPublish 一次 publish 分发完成（delivered 为实际送达的订阅者数）
	OnPublish(typeID uint32, delivered int)

	// OnFrameWritten 写出一个完整帧
	OnFrameWritten(typeID uint32, frameBytes int)

	// OnFrameRead 读入并验证一个完整帧
	OnFrameRead(typeID uint32, frameBytes int)

	// OnFramingError 检测到一次帧错误（读取器进入失步状态）
	OnFramingError()
}
