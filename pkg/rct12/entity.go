package rct12

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Entity decode errors.
var (
	ErrUnknownEntityIdentifier = errors.New("unknown entity identifier")
	ErrUnknownMiscEntityType   = errors.New("unknown misc entity type")
	ErrTruncatedEntity         = errors.New("truncated entity record")
)

// Entity record sizes. An entity occupies a fixed slot in the on-disk
// table; the typed records cover a prefix of that slot.
const (
	EntityBaseSize             = 0x1F
	EntitySlotSize             = 0x100
	BalloonSize                = 0x2D
	DuckSize                   = 0x49
	LitterSize                 = 0x28
	ParticleSize               = 0x28
	SteamParticleSize          = 0x28
	JumpingFountainSize        = 0x48
	MoneyEffectSize            = 0x48
	CrashedVehicleParticleSize = 0x44
)

// EntityIdentifier is the coarse entity kind discriminant.
type EntityIdentifier uint8

const (
	EntityIdentifierVehicle EntityIdentifier = 0
	EntityIdentifierPeep    EntityIdentifier = 1
	EntityIdentifierMisc    EntityIdentifier = 2
	EntityIdentifierLitter  EntityIdentifier = 3
	EntityIdentifierNull    EntityIdentifier = 255
)

// String returns a human-readable identifier name.
func (i EntityIdentifier) String() string {
	switch i {
	case EntityIdentifierVehicle:
		return "Vehicle"
	case EntityIdentifierPeep:
		return "Peep"
	case EntityIdentifierMisc:
		return "Misc"
	case EntityIdentifierLitter:
		return "Litter"
	case EntityIdentifierNull:
		return "Null"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(i))
	}
}

// MiscEntityType is the fine-grained subtype of Misc entities.
type MiscEntityType uint8

const (
	MiscEntitySteamParticle MiscEntityType = iota
	MiscEntityMoneyEffect
	MiscEntityCrashedVehicleParticle
	MiscEntityExplosionCloud
	MiscEntityCrashSplash
	MiscEntityExplosionFlare
	MiscEntityJumpingFountainWater
	MiscEntityBalloon
	MiscEntityDuck
	MiscEntityJumpingFountainSnow
)

// LinkListOffset identifies which logical entity list a record is
// chained into. Values are byte offsets into the legacy list-head
// table, two bytes per list.
type LinkListOffset uint8

const (
	LinkListOffsetFree      LinkListOffset = 0
	LinkListOffsetTrainHead LinkListOffset = 2
	LinkListOffsetPeep      LinkListOffset = 4
	LinkListOffsetMisc      LinkListOffset = 6
	LinkListOffsetLitter    LinkListOffset = 8
	LinkListOffsetVehicle   LinkListOffset = 10
)

// Entity flag bits.
const EntityFlagIsCrashedVehicle uint16 = 1 << 7

// PeepType distinguishes guests from staff.
type PeepType uint8

const (
	PeepTypeGuest   PeepType = 0
	PeepTypeStaff   PeepType = 1
	PeepTypeInvalid PeepType = 0xFF
)

// EntityBase is the 0x1F-byte header common to every entity record.
// The three link fields are 16-bit indices into the shared entity
// table; LinkedListOffset says which logical list the chain belongs
// to.
type EntityBase struct {
	Identifier       EntityIdentifier
	Type             uint8
	NextInQuadrant   uint16
	Next             uint16
	Previous         uint16
	LinkedListOffset LinkListOffset
	HeightNegative   uint8
	Index            uint16
	Flags            uint16
	X                int16
	Y                int16
	Z                int16
	Width            uint8
	HeightPositive   uint8
	Left             int16
	Top              int16
	Right            int16
	Bottom           int16
	Direction        uint8
}

// Base returns the common header. It makes every record type satisfy
// the Entity interface through embedding.
func (b *EntityBase) Base() *EntityBase {
	return b
}

// MiscType returns the fine-grained subtype byte of a Misc entity.
func (b *EntityBase) MiscType() MiscEntityType {
	return MiscEntityType(b.Type)
}

// Entity is a decoded legacy entity record of any subtype.
type Entity interface {
	Base() *EntityBase
	Encode() []byte
}

// Balloon is a floating balloon effect.
type Balloon struct {
	EntityBase
	Pad1F      [5]uint8
	Popped     uint16
	TimeToMove uint8
	Frame      uint8
	Pad28      [4]uint8
	Colour     uint8
}

// Duck is a duck swimming on water.
type Duck struct {
	EntityBase
	Pad1F   [7]uint8
	Frame   uint16
	Pad28   [8]uint8
	TargetX int16
	TargetY int16
	Pad34   [0x14]uint8
	State   uint8
}

// Litter is a dropped piece of rubbish or vomit.
type Litter struct {
	EntityBase
	Pad1F        [5]uint8
	CreationTick uint32
}

// Particle is a frame-counted one-shot effect: explosion cloud,
// explosion flare or crash splash, distinguished by the subtype byte.
type Particle struct {
	EntityBase
	Pad1F [7]uint8
	Frame uint16
}

// SteamParticle is the puff of steam emitted by coaster trains.
type SteamParticle struct {
	EntityBase
	Pad1F      [5]uint8
	TimeToMove uint16
	Frame      uint16
}

// JumpingFountain is one jet of a jumping fountain, water or snow
// variant by subtype byte.
type JumpingFountain struct {
	EntityBase
	Pad1F         [7]uint8
	NumTicksAlive uint8
	Frame         uint8
	Pad28         [7]uint8
	FountainFlags uint8
	TargetX       int16
	TargetY       int16
	Pad34         [0x12]uint8
	Iteration     uint16
}

// MoneyEffect is the floating text shown when money is spent or
// received.
type MoneyEffect struct {
	EntityBase
	Pad1F        [5]uint8
	MoveDelay    uint16
	NumMovements uint8
	Vertical     uint8
	Value        int32
	Pad2C        [0x18]uint8
	OffsetX      int16
	Wiggle       uint16
}

// CrashedVehicleParticle is a piece of debris from a crashed vehicle.
type CrashedVehicleParticle struct {
	EntityBase
	Pad1F             [5]uint8
	TimeToLive        uint16
	Frame             uint16
	Pad28             [4]uint8
	Colour            [2]uint8
	CrashedSpriteBase uint16
	VelocityX         int16
	VelocityY         int16
	VelocityZ         int16
	Pad36             [2]uint8
	AccelerationX     int32
	AccelerationY     int32
	AccelerationZ     int32
}

// Vehicle is a ride vehicle. The full trailing layout belongs to the
// second-generation format headers; the payload is carried verbatim so
// round-trips stay bit-exact.
type Vehicle struct {
	EntityBase
	Payload [EntitySlotSize - EntityBaseSize]uint8
}

// Peep is a guest or staff member. As with Vehicle, the trailing bytes
// are carried verbatim.
type Peep struct {
	EntityBase
	Payload [EntitySlotSize - EntityBaseSize]uint8
}

// NullEntity is an unused slot in the entity table. Legacy files leave
// nondeterministic garbage in the remainder; it is preserved.
type NullEntity struct {
	EntityBase
	Payload [EntitySlotSize - EntityBaseSize]uint8
}

// Encode returns the on-disk form of the record.
func (e *Balloon) Encode() []byte                { return encodeEntity(e) }
func (e *Duck) Encode() []byte                   { return encodeEntity(e) }
func (e *Litter) Encode() []byte                 { return encodeEntity(e) }
func (e *Particle) Encode() []byte               { return encodeEntity(e) }
func (e *SteamParticle) Encode() []byte          { return encodeEntity(e) }
func (e *JumpingFountain) Encode() []byte        { return encodeEntity(e) }
func (e *MoneyEffect) Encode() []byte            { return encodeEntity(e) }
func (e *CrashedVehicleParticle) Encode() []byte { return encodeEntity(e) }
func (e *Vehicle) Encode() []byte                { return encodeEntity(e) }
func (e *Peep) Encode() []byte                   { return encodeEntity(e) }
func (e *NullEntity) Encode() []byte             { return encodeEntity(e) }

func encodeEntity(v any) []byte {
	buf := new(bytes.Buffer)
	// Cannot fail: all record types are fixed-size.
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func decodeInto(data []byte, size int, v any) error {
	if len(data) < size {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrTruncatedEntity, len(data), size)
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}

// DecodeEntityBase decodes only the common header.
func DecodeEntityBase(data []byte) (EntityBase, error) {
	var base EntityBase
	if err := decodeInto(data, EntityBaseSize, &base); err != nil {
		return EntityBase{}, err
	}
	return base, nil
}

// DecodeEntity decodes a full entity record, classifying it by the
// coarse identifier byte and, for Misc entities, the subtype byte.
func DecodeEntity(data []byte) (Entity, error) {
	if len(data) < EntityBaseSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrTruncatedEntity, len(data), EntityBaseSize)
	}
	switch EntityIdentifier(data[0]) {
	case EntityIdentifierVehicle:
		v := &Vehicle{}
		return v, decodeInto(data, EntitySlotSize, v)
	case EntityIdentifierPeep:
		p := &Peep{}
		return p, decodeInto(data, EntitySlotSize, p)
	case EntityIdentifierLitter:
		l := &Litter{}
		return l, decodeInto(data, LitterSize, l)
	case EntityIdentifierMisc:
		return decodeMiscEntity(data)
	case EntityIdentifierNull:
		n := &NullEntity{}
		return n, decodeInto(data, EntitySlotSize, n)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntityIdentifier, data[0])
	}
}

func decodeMiscEntity(data []byte) (Entity, error) {
	switch MiscEntityType(data[1]) {
	case MiscEntitySteamParticle:
		e := &SteamParticle{}
		return e, decodeInto(data, SteamParticleSize, e)
	case MiscEntityMoneyEffect:
		e := &MoneyEffect{}
		return e, decodeInto(data, MoneyEffectSize, e)
	case MiscEntityCrashedVehicleParticle:
		e := &CrashedVehicleParticle{}
		return e, decodeInto(data, CrashedVehicleParticleSize, e)
	case MiscEntityExplosionCloud, MiscEntityCrashSplash, MiscEntityExplosionFlare:
		e := &Particle{}
		return e, decodeInto(data, ParticleSize, e)
	case MiscEntityJumpingFountainWater, MiscEntityJumpingFountainSnow:
		e := &JumpingFountain{}
		return e, decodeInto(data, JumpingFountainSize, e)
	case MiscEntityBalloon:
		e := &Balloon{}
		return e, decodeInto(data, BalloonSize, e)
	case MiscEntityDuck:
		e := &Duck{}
		return e, decodeInto(data, DuckSize, e)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMiscEntityType, data[1])
	}
}
