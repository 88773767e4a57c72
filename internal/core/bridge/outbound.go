package bridge

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"go.uber.org/multierr"

	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/internal/core/wire"
	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
	"github.com/sub0bus/go-sub0bus/pkg/lib/log"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

var logger = log.Logger("core/bridge")

// Outbound 出站桥接器：把本地发布的值转发为线上帧
//
// 作为普通订阅者注册到类型的 Broker 上，不过滤任何数据。订阅回调
// 无错误通道，序列化或写入失败在此累积，由驱动方通过 Err 收割。
type Outbound struct {
	header  types.Header
	broker  *broker.Broker
	writer  *wire.Writer
	scratch bytes.Buffer
	err     error
}

var _ interfaces.Subscriber = (*Outbound)(nil)

// NewOutbound 为一个类型创建出站桥接器并订阅其 Broker
func NewOutbound(info broker.TypeInfo, b *broker.Broker, w *wire.Writer) (*Outbound, error) {
	o := &Outbound{
		header: info.Header(),
		broker: b,
		writer: w,
	}
	o.scratch.Grow(info.Size)
	if err := b.Register(o); err != nil {
		return nil, fmt.Errorf("register outbound bridge: %w", err)
	}
	return o, nil
}

// Filter 出站桥接转发该类型的全部数据
func (o *Outbound) Filter(any) bool {
	return true
}

// Receive 把收到的值编码为定长负载并写出一帧
func (o *Outbound) Receive(data any) {
	o.scratch.Reset()
	if err := binary.Write(&o.scratch, binary.LittleEndian, data); err != nil {
		o.fail(fmt.Errorf("encode payload for type %#08x: %w", o.header.TypeID, err))
		return
	}
	if o.scratch.Len() != int(o.header.PayloadBytes) {
		o.fail(fmt.Errorf("%w: type %#08x encodes to %d bytes, header declares %d",
			wire.ErrPayloadSizeMismatch, o.header.TypeID, o.scratch.Len(), o.header.PayloadBytes))
		return
	}
	if err := o.writer.WriteFrame(o.header, o.scratch.Bytes()); err != nil {
		o.fail(fmt.Errorf("write frame for type %#08x: %w", o.header.TypeID, err))
	}
}

// Err 返回并清空累积的桥接错误
func (o *Outbound) Err() error {
	err := o.err
	o.err = nil
	return err
}

// Close 从 Broker 注销桥接器
func (o *Outbound) Close() error {
	return o.broker.Unregister(o)
}

func (o *Outbound) fail(err error) {
	logger.Warn("出站桥接失败", "typeID", o.header.TypeID, "err", err)
	o.err = multierr.Append(o.err, err)
}
