package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBinaryForm(t *testing.T) {
	h := Header{TypeID: 0x04030201, PayloadBytes: 0x08070605}
	b := h.AppendBinary(nil)

	// 小端序：低位字节在前
	require.Len(t, b, HeaderSize)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, b)

	decoded, err := DecodeHeader(b)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func TestDecodeHeaderShortBuffer(t *testing.T) {
	_, err := DecodeHeader(make([]byte, HeaderSize-1))
	assert.Error(t, err)
}

func TestHeaderOrdering(t *testing.T) {
	a := Header{TypeID: 1, PayloadBytes: 100}
	b := Header{TypeID: 2, PayloadBytes: 1}

	// 排序只看 TypeID
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(Header{TypeID: 1, PayloadBytes: 5}))

	// 相等要求两个字段都一致
	assert.True(t, a.Equal(Header{TypeID: 1, PayloadBytes: 100}))
	assert.False(t, a.Equal(Header{TypeID: 1, PayloadBytes: 5}))
}

func TestDeriveTypeIDStable(t *testing.T) {
	id := DeriveTypeID("sensor.airPressure")
	assert.Equal(t, id, DeriveTypeID("sensor.airPressure"))
	assert.NotEqual(t, id, DeriveTypeID("sensor.airTemperature"))
	assert.NotZero(t, id)
}

func TestFourCC(t *testing.T) {
	assert.Equal(t, uint32(0x30425553), FourCC('S', 'U', 'B', '0'))
}
