package interfaces

// Subscriber 定义消息订阅者
//
// Receive 在发布线程内同步调用；订阅者不得在 Receive 中对同一类型
// 进行注册或注销（分发过程不可重入）。
type Subscriber interface {
	// Receive 接收一条已发布的消息
	Receive(data any)

	// Filter 判断是否接收该消息；返回 false 时跳过 Receive
	Filter(data any) bool
}

// Subscription 定义订阅句柄
//
// 句柄的生命周期界定注册区间：创建即注册，Close 即注销。
type Subscription interface {
	// Close 将订阅者从其 Broker 的订阅表中移除
	//
	// 对未注册的句柄调用 Close 返回错误。
	Close() error
}

// Publisher 定义发布句柄
type Publisher interface {
	// Publish 将数据同步分发给当前注册的所有订阅者（按注册顺序）
	Publish(data any) error

	// Close 释放发布句柄
	Close() error
}

// SubscriberFunc 以闭包形式实现 Subscriber
//
// 替代继承式转发：持有接收函数与可选过滤谓词的具体监听对象。
type SubscriberFunc struct {
	// OnReceive 接收回调（必填）
	OnReceive func(data any)
	// OnFilter 过滤谓词（可选，nil 表示全部接受）
	OnFilter func(data any) bool
}

// Receive 实现 Subscriber
func (s *SubscriberFunc) Receive(data any) {
	s.OnReceive(data)
}

// Filter 实现 Subscriber
func (s *SubscriberFunc) Filter(data any) bool {
	if s.OnFilter == nil {
		return true
	}
	return s.OnFilter(data)
}
