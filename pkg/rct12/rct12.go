// Package rct12 implements the legacy binary save/scenario data model
// shared by the first two generations of the park simulation and the
// conversions between that model and the modern one.
//
// Every structure in this package mirrors an on-disk record byte for
// byte. Decoding and encoding are pure functions of the supplied
// buffers; the package performs no I/O of its own.
package rct12

import "errors"

// Shared decode errors.
var (
	ErrTruncatedRecord = errors.New("truncated record")
)

// Null sentinels of the legacy 8-bit identifier spaces.
const (
	RideIDNull          uint8 = 255
	ObjectEntryNull     uint8 = 255
	BannerIndexNull     uint8 = 255
	SoundIDNull         uint8 = 0xFF
	PeepThoughtItemNone uint8 = 255
)

// XY8Undefined marks an unset packed coordinate pair. The check is
// against the full 16-bit value; either byte alone may legitimately be
// 0xFF.
const XY8Undefined uint16 = 0xFFFF

// PeepSpawnUndefined marks an unset peep spawn coordinate.
const PeepSpawnUndefined uint16 = 0xFFFF

// Vehicle track-and-direction word masks.
const (
	VehicleTrackDirectionMask uint16 = 0b0000000000000011
	VehicleTrackTypeMask      uint16 = 0b1111111111111100
)

// Park history encoding.
const (
	GuestsInParkHistoryFactor uint8 = 20
	ParkHistoryUndefined      uint8 = 0xFF
)

// XY8Size is the encoded size of an XY8 pair.
const XY8Size = 2

// XY8 is a packed pair of unsigned 8-bit map coordinates.
type XY8 struct {
	X uint8
	Y uint8
}

// Packed returns the two components as the single 16-bit value stored
// on disk (x in the low byte).
func (c XY8) Packed() uint16 {
	return uint16(c.X) | uint16(c.Y)<<8
}

// IsNull reports whether the pair is the undefined sentinel.
func (c XY8) IsNull() bool {
	return c.Packed() == XY8Undefined
}

// SetNull sets the pair to the undefined sentinel.
func (c *XY8) SetNull() {
	c.X = 0xFF
	c.Y = 0xFF
}

// DecodeXY8 decodes a packed coordinate pair from the first two bytes
// of data.
func DecodeXY8(data []byte) (XY8, error) {
	if len(data) < XY8Size {
		return XY8{}, ErrTruncatedRecord
	}
	return XY8{X: data[0], Y: data[1]}, nil
}

// Encode returns the two-byte on-disk form.
func (c XY8) Encode() []byte {
	return []byte{c.X, c.Y}
}
