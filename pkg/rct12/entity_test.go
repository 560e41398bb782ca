package rct12

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// createTestEntitySlot fills a full 0x100-byte slot with a recognizable
// byte pattern, then stamps the identifier and subtype bytes.
func createTestEntitySlot(id EntityIdentifier, subtype MiscEntityType) []byte {
	buf := make([]byte, EntitySlotSize)
	for i := range buf {
		buf[i] = uint8(i*7 + 3)
	}
	buf[0] = uint8(id)
	buf[1] = uint8(subtype)
	return buf
}

func TestDecodeEntityBase(t *testing.T) {
	buf := make([]byte, EntityBaseSize)
	buf[0] = uint8(EntityIdentifierMisc)
	buf[1] = uint8(MiscEntityDuck)
	buf[10] = 0x2A // entity index, little endian
	buf[14] = 0x10
	buf[15] = 0x01 // x = 0x0110
	buf[30] = 3    // direction

	base, err := DecodeEntityBase(buf)
	if err != nil {
		t.Fatalf("DecodeEntityBase failed: %v", err)
	}
	if base.Identifier != EntityIdentifierMisc {
		t.Errorf("Identifier = %s", base.Identifier)
	}
	if base.MiscType() != MiscEntityDuck {
		t.Errorf("MiscType() = %d", base.MiscType())
	}
	if base.Index != 0x2A {
		t.Errorf("Index = %d", base.Index)
	}
	if base.X != 0x0110 {
		t.Errorf("X = %#x", base.X)
	}
	if base.Direction != 3 {
		t.Errorf("Direction = %d", base.Direction)
	}
}

func TestDecodeEntityBase_Truncated(t *testing.T) {
	if _, err := DecodeEntityBase(make([]byte, EntityBaseSize-1)); !errors.Is(err, ErrTruncatedEntity) {
		t.Errorf("expected ErrTruncatedEntity, got %v", err)
	}
}

func TestDecodeEntity_RecordSizes(t *testing.T) {
	tests := []struct {
		name    string
		id      EntityIdentifier
		subtype MiscEntityType
		size    int
	}{
		{"Vehicle", EntityIdentifierVehicle, 0, EntitySlotSize},
		{"Peep", EntityIdentifierPeep, 0, EntitySlotSize},
		{"Null", EntityIdentifierNull, 0, EntitySlotSize},
		{"Litter", EntityIdentifierLitter, 0, LitterSize},
		{"SteamParticle", EntityIdentifierMisc, MiscEntitySteamParticle, SteamParticleSize},
		{"MoneyEffect", EntityIdentifierMisc, MiscEntityMoneyEffect, MoneyEffectSize},
		{"CrashedVehicleParticle", EntityIdentifierMisc, MiscEntityCrashedVehicleParticle, CrashedVehicleParticleSize},
		{"ExplosionCloud", EntityIdentifierMisc, MiscEntityExplosionCloud, ParticleSize},
		{"CrashSplash", EntityIdentifierMisc, MiscEntityCrashSplash, ParticleSize},
		{"ExplosionFlare", EntityIdentifierMisc, MiscEntityExplosionFlare, ParticleSize},
		{"JumpingFountainWater", EntityIdentifierMisc, MiscEntityJumpingFountainWater, JumpingFountainSize},
		{"JumpingFountainSnow", EntityIdentifierMisc, MiscEntityJumpingFountainSnow, JumpingFountainSize},
		{"Balloon", EntityIdentifierMisc, MiscEntityBalloon, BalloonSize},
		{"Duck", EntityIdentifierMisc, MiscEntityDuck, DuckSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot := createTestEntitySlot(tc.id, tc.subtype)
			e, err := DecodeEntity(slot)
			if err != nil {
				t.Fatalf("DecodeEntity failed: %v", err)
			}
			got := e.Encode()
			if len(got) != tc.size {
				t.Fatalf("encoded size %#x, expected %#x", len(got), tc.size)
			}
			// Every byte of the typed record, pad fields included, must
			// survive a round trip.
			if !bytes.Equal(got, slot[:tc.size]) {
				t.Errorf("round trip mismatch:\ngot  %x\nwant %x", got, slot[:tc.size])
			}
		})
	}
}

func TestDecodeEntity_FieldDecoding(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierMisc, MiscEntityBalloon)
	slot[0x24] = 0x34
	slot[0x25] = 0x12 // popped
	slot[0x27] = 9    // frame
	slot[0x2C] = 17   // colour

	e, err := DecodeEntity(slot)
	if err != nil {
		t.Fatalf("DecodeEntity failed: %v", err)
	}
	b, ok := e.(*Balloon)
	if !ok {
		t.Fatalf("expected *Balloon, got %T", e)
	}
	if b.Popped != 0x1234 {
		t.Errorf("Popped = %#x", b.Popped)
	}
	if b.Frame != 9 {
		t.Errorf("Frame = %d", b.Frame)
	}
	if b.Colour != 17 {
		t.Errorf("Colour = %d", b.Colour)
	}
}

func TestDecodeEntity_VehiclePayloadPreserved(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierVehicle, 0)
	e, err := DecodeEntity(slot)
	if err != nil {
		t.Fatalf("DecodeEntity failed: %v", err)
	}
	v, ok := e.(*Vehicle)
	if !ok {
		t.Fatalf("expected *Vehicle, got %T", e)
	}
	if !bytes.Equal(v.Payload[:], slot[EntityBaseSize:]) {
		t.Error("vehicle payload not preserved verbatim")
	}
	if diff := cmp.Diff(slot, v.Encode()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEntity_Duck(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierMisc, MiscEntityDuck)
	slot[0x30] = 0xF4
	slot[0x31] = 0x01 // target x = 500
	slot[0x48] = 2    // state

	e, err := DecodeEntity(slot)
	if err != nil {
		t.Fatalf("DecodeEntity failed: %v", err)
	}
	d := e.(*Duck)
	if d.TargetX != 500 {
		t.Errorf("TargetX = %d", d.TargetX)
	}
	if d.State != 2 {
		t.Errorf("State = %d", d.State)
	}
}

func TestDecodeEntity_CrashedVehicleParticle(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierMisc, MiscEntityCrashedVehicleParticle)
	slot[0x38] = 0x40
	slot[0x39] = 0x42
	slot[0x3A] = 0x0F
	slot[0x3B] = 0x00 // acceleration x = 0x000F4240

	e, err := DecodeEntity(slot)
	if err != nil {
		t.Fatalf("DecodeEntity failed: %v", err)
	}
	p := e.(*CrashedVehicleParticle)
	if p.AccelerationX != 0x000F4240 {
		t.Errorf("AccelerationX = %#x", p.AccelerationX)
	}
}

func TestDecodeEntity_UnknownIdentifier(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifier(7), 0)
	if _, err := DecodeEntity(slot); !errors.Is(err, ErrUnknownEntityIdentifier) {
		t.Errorf("expected ErrUnknownEntityIdentifier, got %v", err)
	}
}

func TestDecodeEntity_UnknownMiscType(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierMisc, MiscEntityType(200))
	if _, err := DecodeEntity(slot); !errors.Is(err, ErrUnknownMiscEntityType) {
		t.Errorf("expected ErrUnknownMiscEntityType, got %v", err)
	}
}

func TestDecodeEntity_Truncated(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierMisc, MiscEntityDuck)
	if _, err := DecodeEntity(slot[:DuckSize-1]); !errors.Is(err, ErrTruncatedEntity) {
		t.Errorf("expected ErrTruncatedEntity, got %v", err)
	}
}

func TestEntityIdentifier_String(t *testing.T) {
	if EntityIdentifierNull.String() != "Null" {
		t.Errorf("unexpected name %s", EntityIdentifierNull)
	}
	if EntityIdentifier(9).String() != "Unknown(9)" {
		t.Errorf("unexpected name %s", EntityIdentifier(9))
	}
}

func TestEntityFlags_CrashedVehicle(t *testing.T) {
	slot := createTestEntitySlot(EntityIdentifierVehicle, 0)
	slot[12] = uint8(EntityFlagIsCrashedVehicle)
	slot[13] = 0

	e, err := DecodeEntity(slot)
	if err != nil {
		t.Fatalf("DecodeEntity failed: %v", err)
	}
	if e.Base().Flags&EntityFlagIsCrashedVehicle == 0 {
		t.Error("expected crashed vehicle flag")
	}
}
