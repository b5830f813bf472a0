// Package endian provides the byte order used by the savegame and scenario formats.
//
// Both formats are little-endian on disk regardless of host. Every fixed-width
// access in package buffer goes through an EndianEngine so the order is named
// in one place:
//
//	engine := endian.Wire()
//	v := int32(engine.Uint32(b))
//
// NativeMatchesWire reports whether bulk integer slices may be copied as raw
// memory instead of element by element.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// Wire returns the byte order of the on-disk formats.
func Wire() EndianEngine {
	return binary.LittleEndian
}

// NativeMatchesWire reports whether the host byte order equals Wire().
func NativeMatchesWire() bool {
	return CheckEndianness() == Wire()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. Only tests use it, to
// exercise the element-wise path of the buffer helpers.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
