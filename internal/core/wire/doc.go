// Package wire 实现可续传的二进制帧协议引擎
//
// 一帧由可选前缀、消息头、固定长度负载和可选后缀组成：
//
//	[ Prefix  ] 0 或固定长度标记（默认 4 字节魔数 "SUB0"）
//	[ Header  ] typeId:uint32 + payloadBytes:uint32，小端序
//	[ Payload ] payloadBytes 个原始字节（消息的内存布局）
//	[ Postfix ] 0 或固定长度标记（默认 1 字节分隔符 '\n'）
//
// Writer 将一条消息整帧写入可写流；Reader 是一个可续传状态机，
// 从以任意大小分片到达的字节流中重建帧，经 Directory 将消息头
// 路由到对应的落地缓冲，并在整帧（含尾部分隔符）验证通过后才触发
// 完成回调。
//
// # 失步状态
//
// 帧结构校验失败（前缀/后缀不匹配、未知类型头）使 Reader 进入终态
// SyncLost：Poll 持续返回 ErrSyncLost，直到外部显式调用 Reset。
// 核心只检测并报告失步，重新同步策略（如扫描下一个前缀）由调用方
// 决定。
package wire
