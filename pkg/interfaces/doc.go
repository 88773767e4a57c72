// Package interfaces 定义 Sub0Bus 公共接口
//
// 只包含接口与选项类型，不包含实现。实现位于 internal/core 下的各包。
package interfaces
