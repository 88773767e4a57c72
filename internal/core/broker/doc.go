// Package broker 实现按类型索引的消息代理
//
// 每个已注册的消息类型对应一个 Broker 实例，持有固定容量的订阅表，
// 负责 publish 时的过滤与同步分发。Registry 在进程启动时一次性构建
// "类型标签 → Broker" 的映射，替代隐藏的全局单例状态。
//
// # 快速开始
//
//	reg := broker.NewRegistry()
//	b, _ := reg.RegisterType(broker.TypeInfo{ID: 100, Name: "imu.sample", Size: 4})
//
//	sub, _ := b.Subscribe(&interfaces.SubscriberFunc{
//	    OnReceive: func(data any) { /* 处理消息 */ },
//	})
//	defer sub.Close()
//
//	pub := b.Publisher()
//	pub.Publish(float32(3.14))
//
// # 并发模型
//
// 本包刻意设计为单线程、同步调用/返回：Publish 在调用线程内完成全部
// 分发后立即返回，内部不持锁、不排队。跨线程的注册与发布需要由外部
// 同步机制串行化。订阅者不得在 Receive 内对同一类型注册/注销（分发
// 不可重入）。
//
// # 有界存储
//
// 订阅表在构造时一次性分配，容量固定（默认 8）；Publish 的开销为
// O(订阅者数) 且不产生任何分配。
package broker
