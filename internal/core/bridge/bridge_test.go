package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sub0bus/go-sub0bus/internal/core/broker"
	"github.com/sub0bus/go-sub0bus/internal/core/wire"
	"github.com/sub0bus/go-sub0bus/internal/transport/iostream"
	"github.com/sub0bus/go-sub0bus/pkg/interfaces"
)

type airPressure struct {
	Hectopascals float32
}

type tick struct {
	Seq uint32
}

func registerType[T any](t *testing.T, reg *broker.Registry, id uint32, name string, size int) (*broker.Broker, broker.TypeInfo) {
	t.Helper()
	info := broker.TypeInfo{
		ID:   id,
		Name: name,
		Size: size,
		New:  func() any { return new(T) },
	}
	b, err := reg.RegisterType(info)
	require.NoError(t, err)
	return b, info
}

func drain(t *testing.T, r *wire.Reader, stream interfaces.ReadableStream) {
	t.Helper()
	for {
		more, err := r.Poll(stream)
		require.NoError(t, err)
		if !more {
			return
		}
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	pipe := iostream.NewBuffer()

	// 发送端：本地发布经出站桥接器上线
	sendReg := broker.NewRegistry()
	sendBroker, sendInfo := registerType[airPressure](t, sendReg, 0x1001, "airPressure", 4)
	w := wire.NewWriter(pipe, wire.DefaultProtocol(), nil)
	out, err := NewOutbound(sendInfo, sendBroker, w)
	require.NoError(t, err)

	// 接收端：入站桥接器把帧发布到另一条总线
	recvReg := broker.NewRegistry()
	recvBroker, recvInfo := registerType[airPressure](t, recvReg, 0x1001, "airPressure", 4)
	dir := wire.NewDirectory(4)
	in, err := NewInbound(recvInfo, recvBroker, dir)
	require.NoError(t, err)

	var got []airPressure
	sub := &interfaces.SubscriberFunc{
		OnReceive: func(data any) { got = append(got, data.(airPressure)) },
	}
	require.NoError(t, recvBroker.Register(sub))

	sendBroker.Publish(airPressure{Hectopascals: 3.14})
	require.NoError(t, out.Err())

	drain(t, wire.NewReader(dir, wire.DefaultProtocol(), nil), pipe)
	require.NoError(t, in.Err())

	require.Len(t, got, 1)
	assert.InDelta(t, 3.14, got[0].Hectopascals, 1e-6)
	assert.True(t, pipe.AtEnd())
}

func TestBridgeMultipleTypesOneStream(t *testing.T) {
	pipe := iostream.NewBuffer()
	proto := wire.DefaultProtocol()

	sendReg := broker.NewRegistry()
	pressureBroker, pressureInfo := registerType[airPressure](t, sendReg, 0x1001, "airPressure", 4)
	tickBroker, tickInfo := registerType[tick](t, sendReg, 0x1002, "tick", 4)

	w := wire.NewWriter(pipe, proto, nil)
	_, err := NewOutbound(pressureInfo, pressureBroker, w)
	require.NoError(t, err)
	_, err = NewOutbound(tickInfo, tickBroker, w)
	require.NoError(t, err)

	recvReg := broker.NewRegistry()
	recvPressure, recvPressureInfo := registerType[airPressure](t, recvReg, 0x1001, "airPressure", 4)
	recvTick, recvTickInfo := registerType[tick](t, recvReg, 0x1002, "tick", 4)

	dir := wire.NewDirectory(4)
	_, err = NewInbound(recvPressureInfo, recvPressure, dir)
	require.NoError(t, err)
	_, err = NewInbound(recvTickInfo, recvTick, dir)
	require.NoError(t, err)

	var order []string
	require.NoError(t, recvPressure.Register(&interfaces.SubscriberFunc{
		OnReceive: func(any) { order = append(order, "pressure") },
	}))
	require.NoError(t, recvTick.Register(&interfaces.SubscriberFunc{
		OnReceive: func(data any) {
			order = append(order, "tick")
			assert.Equal(t, uint32(7), data.(tick).Seq)
		},
	}))

	// 同一条流交错承载两个类型，接收顺序与发送顺序一致
	tickBroker.Publish(tick{Seq: 7})
	pressureBroker.Publish(airPressure{Hectopascals: 1013.25})
	tickBroker.Publish(tick{Seq: 7})

	drain(t, wire.NewReader(dir, proto, nil), pipe)
	assert.Equal(t, []string{"tick", "pressure", "tick"}, order)
}

func TestOutboundRecordsWriteErrors(t *testing.T) {
	sendReg := broker.NewRegistry()
	b, info := registerType[airPressure](t, sendReg, 0x1001, "airPressure", 4)

	w := wire.NewWriter(failingStream{}, wire.DefaultProtocol(), nil)
	out, err := NewOutbound(info, b, w)
	require.NoError(t, err)

	b.Publish(airPressure{Hectopascals: 1.0})
	assert.Error(t, out.Err())
	assert.NoError(t, out.Err(), "errors are cleared once harvested")
}

func TestInboundRequiresFactory(t *testing.T) {
	reg := broker.NewRegistry()
	info := broker.TypeInfo{ID: 0x2001, Name: "noFactory", Size: 4}
	b, err := reg.RegisterType(info)
	require.NoError(t, err)

	_, err = NewInbound(info, b, wire.NewDirectory(1))
	assert.Error(t, err)
}

// failingStream 写入恒失败的流
type failingStream struct{}

func (failingStream) Write([]byte) (int, error) { return 0, assert.AnError }
func (failingStream) Flush() error              { return assert.AnError }
