package bridge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/internal/core/wire"
	"github.com/sub0bus/go-sub0bus/pkg/types"
)

// Inbound 入站桥接器：把验证通过的帧负载发布到本地总线
//
// 为一个类型在缓冲目录中登记落地缓冲；读取器填满缓冲并确认整帧
// 完整后调用完成能力，这里解码并发布。完成能力无错误通道，解码
// 失败在此累积，由驱动方通过 Err 收割。
type Inbound struct {
	info   broker.TypeInfo
	broker *broker.Broker
	buf    []byte
	err    error
}

// NewInbound 为一个类型创建入站桥接器并登记到缓冲目录
//
// info.New 必须非空：解码需要构造该类型的落地实例。
func NewInbound(info broker.TypeInfo, b *broker.Broker, dir *wire.Directory) (*Inbound, error) {
	if info.New == nil {
		return nil, fmt.Errorf("%w: type %#08x has no decode factory",
			types.ErrUnknownType, info.ID)
	}
	in := &Inbound{
		info:   info,
		broker: b,
		buf:    make([]byte, info.Size),
	}
	if err := dir.Upsert(info.Header(), wire.Descriptor{
		Buf:      in.buf,
		Complete: in.complete,
	}); err != nil {
		return nil, fmt.Errorf("register inbound bridge: %w", err)
	}
	return in, nil
}

// Err 返回并清空累积的桥接错误
func (in *Inbound) Err() error {
	err := in.err
	in.err = nil
	return err
}

// complete 整帧落地后解码并发布
//
// 发布交付的是值而非指向落地缓冲的指针：订阅者持有的副本不会被
// 下一帧覆写。
func (in *Inbound) complete() {
	target := in.info.New()
	if err := binary.Read(bytes.NewReader(in.buf), binary.LittleEndian, target); err != nil {
		in.err = multierr.Append(in.err, fmt.Errorf(
			"decode payload for type %#08x: %w", in.info.ID, err))
		logger.Warn("入站桥接失败", "typeID", in.info.ID, "err", err)
		return
	}
	in.broker.Publish(reflect.ValueOf(target).Elem().Interface())
}
