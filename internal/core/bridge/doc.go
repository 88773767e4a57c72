// Package bridge 连接进程内消息总线与帧编解码器
//
// 出站方向：Outbound 作为普通订阅者挂到某类型的通道上，把收到的
// 每个值序列化为一帧写出，使"发布到流"对发布方完全透明。
//
// 入站方向：Inbound 为某类型在缓冲目录中登记落地缓冲，整帧验证
// 通过后把缓冲解码为该类型的值并发布到本地总线，使"从流订阅"
// 对订阅方完全透明。
//
// 两个方向都逐类型桥接：一条流可以同时承载多个类型，各类型独立
// 登记自己的桥接器。
package bridge
