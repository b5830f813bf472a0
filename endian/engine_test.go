package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	var probe uint16 = 0x0102
	b := (*[2]byte)(unsafe.Pointer(&probe))

	switch b[0] {
	case 0x01:
		require.Equal(binary.BigEndian, CheckEndianness())
		require.False(IsNativeLittleEndian())
	case 0x02:
		require.Equal(binary.LittleEndian, CheckEndianness())
		require.True(IsNativeLittleEndian())
	default:
		require.Failf("unexpected byte value", "got: %v", b[0])
	}
}

func TestWireIsLittleEndian(t *testing.T) {
	engine := Wire()
	buf := engine.AppendUint32(nil, 0x66)
	require.Equal(t, []byte{0x66, 0, 0, 0}, buf)
	require.Equal(t, uint32(0x80000000), engine.Uint32([]byte{0, 0, 0, 0x80}))
	require.Equal(t, GetLittleEndianEngine(), engine)
}

func TestNativeMatchesWire(t *testing.T) {
	require.Equal(t, IsNativeLittleEndian(), NativeMatchesWire())
}

func TestBigEndianEngine(t *testing.T) {
	buf := GetBigEndianEngine().AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)
}
