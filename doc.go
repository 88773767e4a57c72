// Package sub0bus 提供类型索引的进程内消息总线与可续传的二进制帧协议
//
// Sub0Bus 围绕两个核心概念构建：
//
//   - Bus: 进程内发布-订阅总线，按消息类型路由，同步分发
//   - Bridge: 总线与字节流之间的帧桥接，把发布透明地上线、
//     把线上帧透明地发布到本地总线
//
// # 快速开始
//
//	import "github.com/sub0bus/go-sub0bus"
//
//	type AirPressure struct{ Hectopascals float32 }
//
//	// 1. 创建总线并注册消息类型
//	bus, err := sub0bus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, _ := bus.RegisterType(0, "AirPressure", AirPressure{})
//
//	// 2. 订阅
//	sub, _ := bus.SubscribeFunc(id, func(data any) {
//	    fmt.Println(data.(AirPressure).Hectopascals)
//	})
//	defer sub.Close()
//
//	// 3. 发布（同步分发，返回时所有订阅者已处理完毕）
//	bus.Publish(id, AirPressure{Hectopascals: 1013.25})
//
// # 跨流桥接
//
//	// 发送端：把本地发布的 AirPressure 写入流
//	wb, _ := bus.NewWriterBridge(stream, id)
//	defer wb.Close()
//
//	// 接收端：把流上的帧发布到本地总线
//	rb, _ := bus.NewReaderBridge(stream, id)
//	for {
//	    if _, err := rb.Poll(); err != nil {
//	        break
//	    }
//	}
//
// # 文件组织
//
//	sub0bus/
//	├── sub0bus.go            # 版本信息、类型别名
//	├── bus.go                # Bus 门面：类型注册、订阅、发布
//	├── bridge.go             # WriterBridge / ReaderBridge 门面
//	├── options.go            # WithXxx 配置选项
//	├── errors.go             # 错误定义（转发 pkg/types 哨兵）
//	├── fx.go                 # Fx 模块装配
//	│
//	├── pkg/
//	│   ├── types/            # Header、TypeID 派生、错误哨兵
//	│   ├── interfaces/       # Subscriber、流、统计上报接口
//	│   └── lib/log/          # 结构化日志
//	│
//	└── internal/
//	    ├── core/broker/      # 按类型索引的消息代理
//	    ├── core/wire/        # 帧协议：读写状态机、缓冲目录
//	    ├── core/bridge/      # 总线 ⇄ 流桥接器
//	    ├── core/metrics/     # Prometheus 统计上报
//	    └── transport/iostream/  # io / net.Conn / WebSocket 流适配
//
// # 线程模型
//
// 总线与帧编解码均为单线程设计：发布、订阅管理和 Poll 必须在同一
// 线程（或由调用方自行串行化）进行。分发在发布调用内同步完成，
// 不产生分配，适合高频小消息的确定性处理。
package sub0bus
