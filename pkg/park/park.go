// Package park defines the modern in-memory model types that legacy
// save-format conversions produce and consume.
package park

import "fmt"

// RideID identifies a ride in the modern model.
type RideID uint16

// RideIDNull is the "no ride" sentinel.
const RideIDNull RideID = 0xFFFF

// IsNull reports whether the id is the null sentinel.
func (id RideID) IsNull() bool {
	return id == RideIDNull
}

// ObjectEntryIndex identifies a loaded object entry in the modern model.
type ObjectEntryIndex uint16

// ObjectEntryIndexNull is the "no object" sentinel.
const ObjectEntryIndexNull ObjectEntryIndex = 0xFFFF

// IsNull reports whether the index is the null sentinel.
func (i ObjectEntryIndex) IsNull() bool {
	return i == ObjectEntryIndexNull
}

// Money64 is a fixed-point monetary value, ten times finer grained than
// the legacy 32-bit representation.
type Money64 int64

const (
	// MoneyUndefined marks an unset monetary value (bit pattern
	// 0x8000000000000000).
	MoneyUndefined Money64 = -0x8000000000000000

	// CompanyValueOnFailedObjective marks a company value invalidated
	// by failing the scenario objective (bit pattern
	// 0x8000000000000001). It mirrors the legacy 0x80000001 sentinel
	// and must never be produced by arithmetic scaling.
	CompanyValueOnFailedObjective Money64 = -0x7FFFFFFFFFFFFFFF
)

// TrackType identifies a track piece in the modern, widened track-type
// space.
type TrackType uint16

// EntityList names the logical list an entity belongs to. An entity is
// owned by exactly one list at a time; this replaces the legacy in-band
// linked-list offsets.
type EntityList uint8

const (
	EntityListFree EntityList = iota
	EntityListTrainHead
	EntityListPeep
	EntityListMisc
	EntityListLitter
	EntityListVehicle
)

// String returns a human-readable list name.
func (l EntityList) String() string {
	switch l {
	case EntityListFree:
		return "free"
	case EntityListTrainHead:
		return "train-head"
	case EntityListPeep:
		return "peep"
	case EntityListMisc:
		return "misc"
	case EntityListLitter:
		return "litter"
	case EntityListVehicle:
		return "vehicle"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(l))
	}
}
