// Package iostream 提供帧读写流的传输适配器
//
// 帧编解码核心只依赖最小的字节流能力（见 pkg/interfaces），本包
// 负责把常见传输形态适配到这组能力上：
//
//   - Buffer：进程内字节队列，用于测试和回环管道
//   - ReaderStream / WriterStream：标准 io.Reader / io.Writer 适配
//   - ConnStream：net.Conn 适配，轮询式读取不阻塞
//   - WebSocketStream：gorilla/websocket 二进制消息适配
//
// 所有适配器都把"暂无数据"表达为 (0, nil) 而非阻塞或错误，
// 以配合读取器的可续传轮询模型。
package iostream
