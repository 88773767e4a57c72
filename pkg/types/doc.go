// Package types 定义 Sub0Bus 公共值类型
//
// 包含线协议头（Header）、类型标识派生工具和公共错误定义。
// 本包不依赖任何内部实现包，可被所有层引用。
package types
