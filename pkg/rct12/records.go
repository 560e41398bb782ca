package rct12

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Auxiliary record sizes.
const (
	BannerSize           = 8
	MapAnimationSize     = 6
	PeepSpawnSize        = 6
	XYZD8Size            = 4
	AwardSize            = 4
	NewsItemSize         = 0x10C
	PeepThoughtSize      = 4
	RideMeasurementSize  = 0x4B0C
	TD46TrackElementSize = 2
	TD46MazeElementSize  = 4
)

// Banner is a free-standing banner record. ColourOrRideIndex is a
// byte-level union: banner colour normally, ride index when the banner
// is linked to a ride.
type Banner struct {
	Type              uint8
	Flags             uint8
	StringID          uint16
	ColourOrRideIndex uint8
	TextColour        uint8
	X                 uint8
	Y                 uint8
}

// MapAnimation marks a tile element with a running animation.
type MapAnimation struct {
	BaseZ uint8
	Type  uint8
	X     uint16
	Y     uint16
}

// PeepSpawn is a guest spawn point. X of PeepSpawnUndefined marks an
// unset spawn.
type PeepSpawn struct {
	X         uint16
	Y         uint16
	Z         uint8
	Direction uint8
}

// IsNull reports whether the spawn is unset.
func (s PeepSpawn) IsNull() bool {
	return s.X == PeepSpawnUndefined
}

// XYZD8 is a packed position with direction.
type XYZD8 struct {
	X         uint8
	Y         uint8
	Z         uint8
	Direction uint8
}

// Award is a park award with remaining display time.
type Award struct {
	Time uint16
	Type uint16
}

// TD46TrackElement is one track piece of a track design.
type TD46TrackElement struct {
	Type  uint8
	Flags uint8
}

// TD46MazeElement is one maze tile of a track design. Direction and
// Type overlay the 16-bit maze entry.
type TD46MazeElement struct {
	X         int8
	Y         int8
	Direction uint8
	Type      uint8
}

// MazeEntry returns the wall bits overlaying Direction and Type.
func (m TD46MazeElement) MazeEntry() uint16 {
	return uint16(m.Direction) | uint16(m.Type)<<8
}

// All returns the whole element as the single 32-bit value used for
// the all-zero end check.
func (m TD46MazeElement) All() uint32 {
	return uint32(uint8(m.X)) | uint32(uint8(m.Y))<<8 | uint32(m.Direction)<<16 | uint32(m.Type)<<24
}

// NewsItem is a single news message with a fixed text buffer.
type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Pad0B     uint8
	Text      [MaxNewsItemTextLength]byte
}

// PeepThought is one entry of a guest's thought queue.
type PeepThought struct {
	Type         uint8
	Item         uint8
	Freshness    uint8
	FreshTimeout uint8
}

// RideMeasurement is the rolling G-force/velocity/altitude recording
// of a ride, four parallel sample arrays indexed by CurrentItem.
type RideMeasurement struct {
	RideIndex      uint8
	Flags          uint8
	LastUseTick    uint32
	NumItems       uint16
	CurrentItem    uint16
	VehicleIndex   uint8
	CurrentStation uint8
	Vertical       [RideMeasurementMaxItems]int8
	Lateral        [RideMeasurementMaxItems]int8
	Velocity       [RideMeasurementMaxItems]uint8
	Altitude       [RideMeasurementMaxItems]uint8
}

func decodeRecord(data []byte, size int, v any) error {
	if len(data) < size {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrTruncatedRecord, len(data), size)
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}

func encodeRecord(v any) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

// DecodeBanner decodes a banner record.
func DecodeBanner(data []byte) (Banner, error) {
	var b Banner
	err := decodeRecord(data, BannerSize, &b)
	return b, err
}

// Encode returns the on-disk form.
func (b *Banner) Encode() []byte { return encodeRecord(b) }

// DecodeMapAnimation decodes a map animation record.
func DecodeMapAnimation(data []byte) (MapAnimation, error) {
	var a MapAnimation
	err := decodeRecord(data, MapAnimationSize, &a)
	return a, err
}

// Encode returns the on-disk form.
func (a *MapAnimation) Encode() []byte { return encodeRecord(a) }

// DecodePeepSpawn decodes a peep spawn record.
func DecodePeepSpawn(data []byte) (PeepSpawn, error) {
	var s PeepSpawn
	err := decodeRecord(data, PeepSpawnSize, &s)
	return s, err
}

// Encode returns the on-disk form.
func (s *PeepSpawn) Encode() []byte { return encodeRecord(s) }

// DecodeNewsItem decodes a news item record.
func DecodeNewsItem(data []byte) (NewsItem, error) {
	var n NewsItem
	err := decodeRecord(data, NewsItemSize, &n)
	return n, err
}

// Encode returns the on-disk form.
func (n *NewsItem) Encode() []byte { return encodeRecord(n) }

// DecodeRideMeasurement decodes a ride measurement record.
func DecodeRideMeasurement(data []byte) (*RideMeasurement, error) {
	m := &RideMeasurement{}
	if err := decodeRecord(data, RideMeasurementSize, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode returns the on-disk form.
func (m *RideMeasurement) Encode() []byte { return encodeRecord(m) }

// DecodeXYZD8 decodes a packed position-with-direction record.
func DecodeXYZD8(data []byte) (XYZD8, error) {
	var p XYZD8
	err := decodeRecord(data, XYZD8Size, &p)
	return p, err
}

// Encode returns the on-disk form.
func (p *XYZD8) Encode() []byte { return encodeRecord(p) }

// DecodeAward decodes a park award record.
func DecodeAward(data []byte) (Award, error) {
	var a Award
	err := decodeRecord(data, AwardSize, &a)
	return a, err
}

// Encode returns the on-disk form.
func (a *Award) Encode() []byte { return encodeRecord(a) }

// DecodeTD46TrackElement decodes a track design piece.
func DecodeTD46TrackElement(data []byte) (TD46TrackElement, error) {
	var e TD46TrackElement
	err := decodeRecord(data, TD46TrackElementSize, &e)
	return e, err
}

// Encode returns the on-disk form.
func (e *TD46TrackElement) Encode() []byte { return encodeRecord(e) }

// DecodeTD46MazeElement decodes a track design maze tile.
func DecodeTD46MazeElement(data []byte) (TD46MazeElement, error) {
	var m TD46MazeElement
	err := decodeRecord(data, TD46MazeElementSize, &m)
	return m, err
}

// Encode returns the on-disk form.
func (m *TD46MazeElement) Encode() []byte { return encodeRecord(m) }

// DecodePeepThought decodes a peep thought record.
func DecodePeepThought(data []byte) (PeepThought, error) {
	var t PeepThought
	err := decodeRecord(data, PeepThoughtSize, &t)
	return t, err
}

// Encode returns the on-disk form.
func (t *PeepThought) Encode() []byte { return encodeRecord(t) }
