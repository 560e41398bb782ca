package rct12

import (
	"errors"
	"fmt"
)

// Tile element errors.
var (
	ErrUnknownTileElementType = errors.New("unknown tile element type")
	ErrTruncatedTileElement   = errors.New("truncated tile element")
)

// TileElementSize is the fixed on-disk size of every tile element.
const TileElementSize = 8

// TileElementType is the element-kind tag stored in the type byte.
type TileElementType uint8

// Element kinds. 14 and 15 are placeholders left behind by a known
// historical corruption pattern ("eight cars" trainer); they decode
// without error and round-trip their payload unchanged.
const (
	TileElementTypeSurface            TileElementType = 0
	TileElementTypePath               TileElementType = 1
	TileElementTypeTrack              TileElementType = 2
	TileElementTypeSmallScenery       TileElementType = 3
	TileElementTypeEntrance           TileElementType = 4
	TileElementTypeWall               TileElementType = 5
	TileElementTypeLargeScenery       TileElementType = 6
	TileElementTypeBanner             TileElementType = 7
	TileElementTypeCorrupt            TileElementType = 8
	TileElementTypeEightCarsCorrupt14 TileElementType = 14
	TileElementTypeEightCarsCorrupt15 TileElementType = 15
)

// String returns a human-readable kind name.
func (t TileElementType) String() string {
	switch t {
	case TileElementTypeSurface:
		return "Surface"
	case TileElementTypePath:
		return "Path"
	case TileElementTypeTrack:
		return "Track"
	case TileElementTypeSmallScenery:
		return "SmallScenery"
	case TileElementTypeEntrance:
		return "Entrance"
	case TileElementTypeWall:
		return "Wall"
	case TileElementTypeLargeScenery:
		return "LargeScenery"
	case TileElementTypeBanner:
		return "Banner"
	case TileElementTypeCorrupt:
		return "Corrupt"
	case TileElementTypeEightCarsCorrupt14:
		return "EightCarsCorrupt14"
	case TileElementTypeEightCarsCorrupt15:
		return "EightCarsCorrupt15"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Masks of the common type byte. The kind tag occupies bits 2-5; the
// low two bits and the top two bits are reused per kind (direction,
// surface style, scenery quadrant, chain lift, queue banner direction).
const (
	TileElementTypeMask      uint8 = 0b00111100
	TileElementDirectionMask uint8 = 0b00000011
	TileElementQuadrantMask  uint8 = 0b11000000
)

// Flag bits of the common flags byte. The lower nibble holds the
// occupied quadrants. Bits 5 and 6 are overloaded: which meaning
// applies depends on context the caller supplies.
const (
	TileElementFlagGhost                    uint8 = 1 << 4
	TileElementFlagBroken                   uint8 = 1 << 5
	TileElementFlagBlockBrakeClosed         uint8 = 1 << 5
	TileElementFlagIndestructibleTrackPiece uint8 = 1 << 6
	TileElementFlagBlockedByVehicle         uint8 = 1 << 6
	TileElementFlagLargeSceneryAccounted    uint8 = 1 << 6
	TileElementFlagLastTile                 uint8 = 1 << 7
	TileElementOccupiedQuadrantsMask        uint8 = 0b00001111
)

// Surface element bit layout.
const (
	SurfaceElementTypeSurfaceMask uint8 = 0b00000011 // in the type byte
	SurfaceElementTypeEdgeMask    uint8 = 0b01000000 // in the type byte
	SurfaceEdgeStyleMask          uint8 = 0xE0       // in the slope byte
	SurfaceSlopeMask              uint8 = 0x1F       // in the slope byte
	SurfaceTerrainMask            uint8 = 0xE0       // in the terrain byte
	SurfaceWaterHeightMask        uint8 = 0x1F       // in the terrain byte
	SurfaceOwnershipParkFenceMask uint8 = 0x0F
)

// Path element bit layout.
const (
	PathElementTypeIsQueueFlag uint8 = 1 << 0 // in the type byte
	PathElementTypeIsWideFlag  uint8 = 1 << 1 // in the type byte
	PathSlopeDirectionMask     uint8 = 0b00000011
	PathIsSlopedFlag           uint8 = 1 << 2
	PathHasQueueBannerFlag     uint8 = 1 << 3
	PathEntryTypeMask          uint8 = 0b11110000
	PathAdditionTypeMask       uint8 = 0b00001111
	PathAdditionStationMask    uint8 = 0b01110000
	PathAdditionGhostFlag      uint8 = 1 << 7
)

// Track element bit layout.
const (
	TrackElementTypeChainLiftFlag uint8 = 1 << 7 // in the type byte
	TrackSequenceMask             uint8 = 0b00001111
	TrackStationIndexMask         uint8 = 0b01110000
	TrackGreenLightFlag           uint8 = 1 << 7
	TrackPhotoTimeoutMask         uint8 = 0b11110000
	TrackColourSchemeMask         uint8 = 0b00000011
	TrackColourInvertedFlag       uint8 = 1 << 2 // multi-dimension coaster
	TrackColourCableLiftFlag      uint8 = 1 << 3 // giga coaster
	TrackBrakeBoosterSpeedMask    uint8 = 0b11110000
	TrackSeatRotationMask         uint8 = 0b11110000
	TrackDoorAMask                uint8 = 0b00011100
	TrackDoorBMask                uint8 = 0b11100000
)

// Large scenery packs its entry index and sequence into one 16-bit
// field.
const LargeSceneryEntryMask uint16 = 0x3FF

// TileElement is one 8-byte entry in a per-coordinate element stack.
// The four data bytes are interpreted according to the kind tag;
// typed views are obtained through the As* accessors.
type TileElement struct {
	Type            uint8
	Flags           uint8
	BaseHeight      uint8
	ClearanceHeight uint8
	Data            [4]uint8
}

// DecodeTileElement decodes an 8-byte buffer, rejecting unknown kind
// tags. The eight-cars corruption placeholders are accepted.
func DecodeTileElement(data []byte) (TileElement, error) {
	if len(data) < TileElementSize {
		return TileElement{}, ErrTruncatedTileElement
	}
	el := TileElement{
		Type:            data[0],
		Flags:           data[1],
		BaseHeight:      data[2],
		ClearanceHeight: data[3],
		Data:            [4]uint8{data[4], data[5], data[6], data[7]},
	}
	switch el.ElementType() {
	case TileElementTypeSurface, TileElementTypePath, TileElementTypeTrack,
		TileElementTypeSmallScenery, TileElementTypeEntrance, TileElementTypeWall,
		TileElementTypeLargeScenery, TileElementTypeBanner, TileElementTypeCorrupt,
		TileElementTypeEightCarsCorrupt14, TileElementTypeEightCarsCorrupt15:
		return el, nil
	default:
		return TileElement{}, fmt.Errorf("%w: %d", ErrUnknownTileElementType, uint8(el.ElementType()))
	}
}

// Encode returns the 8-byte on-disk form.
func (e *TileElement) Encode() []byte {
	return []byte{e.Type, e.Flags, e.BaseHeight, e.ClearanceHeight, e.Data[0], e.Data[1], e.Data[2], e.Data[3]}
}

// ElementType returns the kind tag.
func (e *TileElement) ElementType() TileElementType {
	return TileElementType((e.Type & TileElementTypeMask) >> 2)
}

// Direction returns the element rotation.
func (e *TileElement) Direction() uint8 {
	return e.Type & TileElementDirectionMask
}

// OccupiedQuadrants returns the lower nibble of the flags byte, one
// bit per occupied quadrant.
func (e *TileElement) OccupiedQuadrants() uint8 {
	return e.Flags & TileElementOccupiedQuadrantsMask
}

// IsLastForTile reports whether this is the final element of its
// column. Columns are terminated by this flag, not by a count.
func (e *TileElement) IsLastForTile() bool {
	return e.Flags&TileElementFlagLastTile != 0
}

// IsGhost reports whether the element is a ghost (preview) element.
func (e *TileElement) IsGhost() bool {
	return e.Flags&TileElementFlagGhost != 0
}

// AsSurface returns a surface view, or nil if the element is of a
// different kind. The check never mutates and never aliases across
// kinds.
func (e *TileElement) AsSurface() *SurfaceElement {
	if e.ElementType() != TileElementTypeSurface {
		return nil
	}
	return (*SurfaceElement)(e)
}

// AsPath returns a path view, or nil on kind mismatch.
func (e *TileElement) AsPath() *PathElement {
	if e.ElementType() != TileElementTypePath {
		return nil
	}
	return (*PathElement)(e)
}

// AsTrack returns a track view, or nil on kind mismatch.
func (e *TileElement) AsTrack() *TrackElement {
	if e.ElementType() != TileElementTypeTrack {
		return nil
	}
	return (*TrackElement)(e)
}

// AsSmallScenery returns a small scenery view, or nil on kind mismatch.
func (e *TileElement) AsSmallScenery() *SmallSceneryElement {
	if e.ElementType() != TileElementTypeSmallScenery {
		return nil
	}
	return (*SmallSceneryElement)(e)
}

// AsEntrance returns an entrance view, or nil on kind mismatch.
func (e *TileElement) AsEntrance() *EntranceElement {
	if e.ElementType() != TileElementTypeEntrance {
		return nil
	}
	return (*EntranceElement)(e)
}

// AsWall returns a wall view, or nil on kind mismatch.
func (e *TileElement) AsWall() *WallElement {
	if e.ElementType() != TileElementTypeWall {
		return nil
	}
	return (*WallElement)(e)
}

// AsLargeScenery returns a large scenery view, or nil on kind mismatch.
func (e *TileElement) AsLargeScenery() *LargeSceneryElement {
	if e.ElementType() != TileElementTypeLargeScenery {
		return nil
	}
	return (*LargeSceneryElement)(e)
}

// AsBanner returns a banner view, or nil on kind mismatch.
func (e *TileElement) AsBanner() *BannerElement {
	if e.ElementType() != TileElementTypeBanner {
		return nil
	}
	return (*BannerElement)(e)
}

// SurfaceElement is the typed view of a surface element. Data bytes:
// slope (edge style | slope), terrain (terrain style | water height),
// grass length, ownership.
type SurfaceElement TileElement

func (e *SurfaceElement) slope() uint8   { return e.Data[0] }
func (e *SurfaceElement) terrain() uint8 { return e.Data[1] }

// Slope returns the corner-raise slope bits.
func (e *SurfaceElement) Slope() uint8 {
	return e.slope() & SurfaceSlopeMask
}

// SurfaceStyle returns the 5-bit terrain surface style; the upper two
// bits live in the type byte.
func (e *SurfaceElement) SurfaceStyle() uint32 {
	style := uint32(e.terrain()&SurfaceTerrainMask) >> 5
	style |= uint32(e.Type&SurfaceElementTypeSurfaceMask) << 3
	return style
}

// EdgeStyle returns the 4-bit terrain edge style; the fourth bit lives
// in the type byte.
func (e *SurfaceElement) EdgeStyle() uint32 {
	style := uint32(e.slope()&SurfaceEdgeStyleMask) >> 5
	if e.Type&SurfaceElementTypeEdgeMask != 0 {
		style |= 1 << 3
	}
	return style
}

// WaterHeight returns the water level in raw legacy height units.
func (e *SurfaceElement) WaterHeight() uint8 {
	return e.terrain() & SurfaceWaterHeightMask
}

// GrassLength returns the raw grass length byte.
func (e *SurfaceElement) GrassLength() uint8 {
	return e.Data[2]
}

// Ownership returns the raw ownership byte.
func (e *SurfaceElement) Ownership() uint8 {
	return e.Data[3]
}

// ParkFences returns the park fence bits of the ownership byte.
func (e *SurfaceElement) ParkFences() uint8 {
	return e.Data[3] & SurfaceOwnershipParkFenceMask
}

// PathElement is the typed view of a footpath element. Data bytes:
// entry (type | sloped | rotation), additions (ghost | station |
// addition), edges, addition status or ride index.
type PathElement TileElement

func (e *PathElement) entry() uint8     { return e.Data[0] }
func (e *PathElement) additions() uint8 { return e.Data[1] }

// EntryIndex returns the path object entry index.
func (e *PathElement) EntryIndex() uint8 {
	return (e.entry() & PathEntryTypeMask) >> 4
}

// QueueBannerDirection returns the facing of the queue banner, stored
// in the top two bits of the type byte.
func (e *PathElement) QueueBannerDirection() uint8 {
	return (e.Type & TileElementQuadrantMask) >> 6
}

// IsSloped reports whether the path is sloped.
func (e *PathElement) IsSloped() bool {
	return e.entry()&PathIsSlopedFlag != 0
}

// SlopeDirection returns the slope facing.
func (e *PathElement) SlopeDirection() uint8 {
	return e.entry() & PathSlopeDirectionMask
}

// RideIndex returns the ride a queue path belongs to.
func (e *PathElement) RideIndex() uint8 {
	return e.Data[3]
}

// StationIndex returns the station a queue path leads to.
func (e *PathElement) StationIndex() uint8 {
	return (e.additions() & PathAdditionStationMask) >> 4
}

// IsWide reports whether the path is flagged as wide.
func (e *PathElement) IsWide() bool {
	return e.Type&PathElementTypeIsWideFlag != 0
}

// IsQueue reports whether the path is a queue line.
func (e *PathElement) IsQueue() bool {
	return e.Type&PathElementTypeIsQueueFlag != 0
}

// HasQueueBanner reports whether a queue sign is present.
func (e *PathElement) HasQueueBanner() bool {
	return e.entry()&PathHasQueueBannerFlag != 0
}

// Edges returns the connected-edge bits.
func (e *PathElement) Edges() uint8 {
	return e.Data[2] & 0x0F
}

// Corners returns the connected-corner bits.
func (e *PathElement) Corners() uint8 {
	return e.Data[2] >> 4
}

// Addition returns the path addition type; zero means none.
func (e *PathElement) Addition() uint8 {
	return e.additions() & PathAdditionTypeMask
}

// AdditionIsGhost reports whether the addition is a ghost.
func (e *PathElement) AdditionIsGhost() bool {
	return e.additions()&PathAdditionGhostFlag != 0
}

// AdditionStatus returns the raw addition status byte (bins, lamps).
func (e *PathElement) AdditionStatus() uint8 {
	return e.Data[3]
}

// IsBroken reports whether the path addition is broken. Shares a bit
// with BlockBrakeClosed of track elements.
func (e *PathElement) IsBroken() bool {
	return e.Flags&TileElementFlagBroken != 0
}

// IsBlockedByVehicle reports whether a vehicle blocks the path. Shares
// a bit with IsIndestructible of track elements.
func (e *PathElement) IsBlockedByVehicle() bool {
	return e.Flags&TileElementFlagBlockedByVehicle != 0
}

// FirstGenPathType reconstructs the first-generation path type, which
// kept the colour in the low bits of the type byte.
func (e *PathElement) FirstGenPathType() uint8 {
	colour := e.Type & 3
	return (e.entry()&PathEntryTypeMask)>>2 | colour
}

// FirstGenSupportType returns the first-generation support style bits.
func (e *PathElement) FirstGenSupportType() uint8 {
	return (e.Flags & 0b01100000) >> 5
}

// TrackElement is the typed view of a track element. Data bytes:
// track type, sequence, colour, ride index. Sequence and colour
// together double as the 16-bit maze entry.
type TrackElement TileElement

func (e *TrackElement) sequence() uint8 { return e.Data[1] }
func (e *TrackElement) colour() uint8   { return e.Data[2] }

// TrackType returns the legacy 8-bit track type.
func (e *TrackElement) TrackType() uint8 {
	return e.Data[0]
}

// SequenceIndex returns the position within a multi-tile piece.
func (e *TrackElement) SequenceIndex() uint8 {
	return e.sequence() & TrackSequenceMask
}

// RideIndex returns the owning ride.
func (e *TrackElement) RideIndex() uint8 {
	return e.Data[3]
}

// ColourScheme returns the track colour scheme.
func (e *TrackElement) ColourScheme() uint8 {
	return e.colour() & TrackColourSchemeMask
}

// StationIndex returns the station index of a station piece.
func (e *TrackElement) StationIndex() uint8 {
	return (e.sequence() & TrackStationIndexMask) >> 4
}

// HasChain reports whether the piece has a chain lift.
func (e *TrackElement) HasChain() bool {
	return e.Type&TrackElementTypeChainLiftFlag != 0
}

// HasCableLift reports whether the piece carries a cable lift.
func (e *TrackElement) HasCableLift() bool {
	return e.colour()&TrackColourCableLiftFlag != 0
}

// IsInverted reports whether a multi-dimension piece is inverted.
func (e *TrackElement) IsInverted() bool {
	return e.colour()&TrackColourInvertedFlag != 0
}

// BrakeBoosterSpeed returns the brake or booster speed.
func (e *TrackElement) BrakeBoosterSpeed() uint8 {
	return (e.colour() & TrackBrakeBoosterSpeedMask) >> 4 << 1
}

// HasGreenLight reports whether a station piece shows a green light.
// Only meaningful for station pieces; the same bits count down an
// on-ride photo elsewhere.
func (e *TrackElement) HasGreenLight() bool {
	return e.sequence()&TrackGreenLightFlag != 0
}

// SeatRotation returns the seat rotation of a multi-dimension piece.
func (e *TrackElement) SeatRotation() uint8 {
	return (e.colour() & TrackSeatRotationMask) >> 4
}

// MazeEntry returns the 16-bit maze wall bits overlaying sequence and
// colour.
func (e *TrackElement) MazeEntry() uint16 {
	return uint16(e.Data[1]) | uint16(e.Data[2])<<8
}

// PhotoTimeout returns the on-ride photo countdown bits. Only
// meaningful for on-ride photo pieces.
func (e *TrackElement) PhotoTimeout() uint8 {
	return (e.sequence() & TrackPhotoTimeoutMask) >> 4
}

// DoorAState returns the entrance door state of a door piece. A
// first-generation feature carried forward for coaster door tracks.
func (e *TrackElement) DoorAState() uint8 {
	return (e.colour() & TrackDoorAMask) >> 2
}

// DoorBState returns the exit door state of a door piece.
func (e *TrackElement) DoorBState() uint8 {
	return (e.colour() & TrackDoorBMask) >> 5
}

// BlockBrakeClosed reports whether a block brake is closed. The bit is
// shared with IsBroken; which meaning applies depends on the track
// type, which the caller knows.
func (e *TrackElement) BlockBrakeClosed() bool {
	return e.Flags&TileElementFlagBlockBrakeClosed != 0
}

// IsIndestructible reports whether the piece is protected from
// demolition. Shares a bit with IsBlockedByVehicle.
func (e *TrackElement) IsIndestructible() bool {
	return e.Flags&TileElementFlagIndestructibleTrackPiece != 0
}

// SmallSceneryElement is the typed view of a small scenery element.
// Data bytes: entry index, age, primary colour, secondary colour.
type SmallSceneryElement TileElement

// EntryIndex returns the scenery object entry index.
func (e *SmallSceneryElement) EntryIndex() uint8 {
	return e.Data[0]
}

// Age returns the raw age byte.
func (e *SmallSceneryElement) Age() uint8 {
	return e.Data[1]
}

// SceneryQuadrant returns which tile quadrant the item occupies,
// stored in the top two bits of the type byte.
func (e *SmallSceneryElement) SceneryQuadrant() uint8 {
	return (e.Type & TileElementQuadrantMask) >> 6
}

// PrimaryColour returns the primary remap colour.
func (e *SmallSceneryElement) PrimaryColour() uint8 {
	return e.Data[2] & 0x1F
}

// SecondaryColour returns the secondary remap colour.
func (e *SmallSceneryElement) SecondaryColour() uint8 {
	return e.Data[3] & 0x1F
}

// NeedsSupports reports whether supports are drawn under the item.
func (e *SmallSceneryElement) NeedsSupports() bool {
	return e.Data[2]&0x20 != 0
}

// LargeSceneryElement is the typed view of a large scenery element.
// Data bytes: 16-bit entry/sequence, two colour bytes.
type LargeSceneryElement TileElement

func (e *LargeSceneryElement) entry() uint16 {
	return uint16(e.Data[0]) | uint16(e.Data[1])<<8
}

// EntryIndex returns the scenery object entry index (low 10 bits).
func (e *LargeSceneryElement) EntryIndex() uint32 {
	return uint32(e.entry() & LargeSceneryEntryMask)
}

// SequenceIndex returns the position within the multi-tile item.
func (e *LargeSceneryElement) SequenceIndex() uint16 {
	return e.entry() >> 10
}

// PrimaryColour returns the primary remap colour.
func (e *LargeSceneryElement) PrimaryColour() uint8 {
	return e.Data[2] & 0x1F
}

// SecondaryColour returns the secondary remap colour.
func (e *LargeSceneryElement) SecondaryColour() uint8 {
	return e.Data[3] & 0x1F
}

// BannerIndex reassembles the banner index scattered across the type
// byte and the two colour bytes.
func (e *LargeSceneryElement) BannerIndex() uint8 {
	return (e.Type & 0xC0) | (e.Data[2]&0xE0)>>2 | (e.Data[3]&0xE0)>>5
}

// WallElement is the typed view of a wall element. Data bytes: entry
// index, tertiary colour or banner index, primary/secondary colour,
// animation.
type WallElement TileElement

// EntryIndex returns the wall object entry index.
func (e *WallElement) EntryIndex() uint8 {
	return e.Data[0]
}

// Slope returns the wall slope, stored in the top two bits of the type
// byte.
func (e *WallElement) Slope() uint8 {
	return (e.Type & TileElementQuadrantMask) >> 6
}

// PrimaryColour returns the primary remap colour.
func (e *WallElement) PrimaryColour() uint8 {
	return e.Data[2] & 0x1F
}

// SecondaryColour reassembles the 5-bit secondary colour from the top
// of the colour byte and bits 5-6 of the flags byte.
func (e *WallElement) SecondaryColour() uint8 {
	c := (e.Data[2] &^ 0x1F) >> 5
	c |= (e.Flags & 0b01100000) >> 2
	return c
}

// TertiaryColour returns the tertiary remap colour. The byte doubles
// as the banner index on banner walls.
func (e *WallElement) TertiaryColour() uint8 {
	return e.Data[1]
}

// BannerIndex returns the banner index of a banner wall.
func (e *WallElement) BannerIndex() uint8 {
	return e.Data[1]
}

// AnimationFrame returns the current animation frame.
func (e *WallElement) AnimationFrame() uint8 {
	return (e.Data[3] >> 3) & 0x0F
}

// IsAcrossTrack reports whether the wall crosses a track (doors).
func (e *WallElement) IsAcrossTrack() bool {
	return e.Data[3]&0x04 != 0
}

// AnimationIsBackwards reports whether the animation plays backwards.
func (e *WallElement) AnimationIsBackwards() bool {
	return e.Data[3]&0x80 != 0
}

// EntranceElement is the typed view of a ride entrance, ride exit or
// park entrance element. Data bytes: entrance type, station/sequence,
// path type, ride index.
type EntranceElement TileElement

// EntranceType distinguishes ride entrance, ride exit and park
// entrance.
func (e *EntranceElement) EntranceType() uint8 {
	return e.Data[0]
}

// RideIndex returns the owning ride.
func (e *EntranceElement) RideIndex() uint8 {
	return e.Data[3]
}

// StationIndex returns the owning station.
func (e *EntranceElement) StationIndex() uint8 {
	return (e.Data[1] & 0x70) >> 4
}

// SequenceIndex returns the position within a park entrance.
func (e *EntranceElement) SequenceIndex() uint8 {
	return e.Data[1] & 0x0F
}

// PathType returns the footpath style beneath the entrance.
func (e *EntranceElement) PathType() uint8 {
	return e.Data[2]
}

// BannerElement is the typed view of a free-standing banner element.
// Data bytes: banner index, position, allowed edges, unused.
type BannerElement TileElement

// Index returns the banner table index.
func (e *BannerElement) Index() uint8 {
	return e.Data[0]
}

// Position returns the banner position on the tile.
func (e *BannerElement) Position() uint8 {
	return e.Data[1]
}

// AllowedEdges returns the edges the banner may face.
func (e *BannerElement) AllowedEdges() uint8 {
	return e.Data[2]
}
