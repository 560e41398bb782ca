package rct12

import (
	"fmt"

	"github.com/Faultbox/parkfmt/pkg/park"
)

// CompanyValueOnFailedObjective is the legacy money sentinel written
// when the scenario objective was failed. It bypasses arithmetic money
// scaling in both directions.
const CompanyValueOnFailedObjective int32 = -0x7FFFFFFF // bit pattern 0x80000001

// The modern representation keeps money at ten times the legacy
// resolution.
const moneyScale = 10

// EntryIndexToModern widens a legacy object entry index, mapping the
// null sentinel to the modern null sentinel.
func EntryIndexToModern(index uint8) park.ObjectEntryIndex {
	if index == ObjectEntryNull {
		return park.ObjectEntryIndexNull
	}
	return park.ObjectEntryIndex(index)
}

// EntryIndexFromModern narrows a modern object entry index, mapping
// the null sentinel to the legacy null sentinel.
func EntryIndexFromModern(index park.ObjectEntryIndex) uint8 {
	if index.IsNull() {
		return ObjectEntryNull
	}
	return uint8(index)
}

// RideIDToModern widens a legacy ride id, mapping the null sentinel to
// the modern null sentinel.
func RideIDToModern(id uint8) park.RideID {
	if id == RideIDNull {
		return park.RideIDNull
	}
	return park.RideID(id)
}

// RideIDFromModern narrows a modern ride id, mapping the null sentinel
// to the legacy null sentinel.
func RideIDFromModern(id park.RideID) uint8 {
	if id.IsNull() {
		return RideIDNull
	}
	return uint8(id)
}

// MoneyToModern rescales a legacy monetary value to the modern
// resolution.
func MoneyToModern(value int32) park.Money64 {
	return park.Money64(value) * moneyScale
}

// MoneyFromModern rescales a modern monetary value to the legacy
// resolution, flooring toward negative infinity.
func MoneyFromModern(value park.Money64) int32 {
	v := int64(value)
	q := v / moneyScale
	if v%moneyScale != 0 && v < 0 {
		q--
	}
	return int32(q)
}

// CompletedCompanyValueToModern converts the completed-company-value
// field. The failed-objective sentinel maps to its modern counterpart,
// never through the scaling path.
func CompletedCompanyValueToModern(value int32) park.Money64 {
	if value == CompanyValueOnFailedObjective {
		return park.CompanyValueOnFailedObjective
	}
	return MoneyToModern(value)
}

// CompletedCompanyValueFromModern is the export direction of
// CompletedCompanyValueToModern.
func CompletedCompanyValueFromModern(value park.Money64) int32 {
	if value == park.CompanyValueOnFailedObjective {
		return CompanyValueOnFailedObjective
	}
	return MoneyFromModern(value)
}

// EntityListForLinkOffset translates the in-band linked-list offset
// into the explicit modern list tag.
func EntityListForLinkOffset(offset LinkListOffset) (park.EntityList, error) {
	switch offset {
	case LinkListOffsetFree:
		return park.EntityListFree, nil
	case LinkListOffsetTrainHead:
		return park.EntityListTrainHead, nil
	case LinkListOffsetPeep:
		return park.EntityListPeep, nil
	case LinkListOffsetMisc:
		return park.EntityListMisc, nil
	case LinkListOffsetLitter:
		return park.EntityListLitter, nil
	case LinkListOffsetVehicle:
		return park.EntityListVehicle, nil
	default:
		return 0, fmt.Errorf("unknown entity link list offset %d", uint8(offset))
	}
}

// LinkOffsetForEntityList is the export direction of
// EntityListForLinkOffset.
func LinkOffsetForEntityList(list park.EntityList) LinkListOffset {
	switch list {
	case park.EntityListTrainHead:
		return LinkListOffsetTrainHead
	case park.EntityListPeep:
		return LinkListOffsetPeep
	case park.EntityListMisc:
		return LinkListOffsetMisc
	case park.EntityListLitter:
		return LinkListOffsetLitter
	case park.EntityListVehicle:
		return LinkListOffsetVehicle
	default:
		return LinkListOffsetFree
	}
}

// RideTypesBeenOn expands a peep's ride-type bitset into the list of
// set indices.
func RideTypesBeenOn(bitset []byte) []uint16 {
	var types []uint16
	for i := uint16(0); i < MaxRideObjects; i++ {
		if int(i/8) < len(bitset) && bitset[i/8]&(1<<(i%8)) != 0 {
			types = append(types, i)
		}
	}
	return types
}

// RidesBeenOn expands a peep's ride bitset into the list of ride ids.
func RidesBeenOn(bitset []byte) []park.RideID {
	var rides []park.RideID
	for i := uint16(0); i < MaxRidesInPark; i++ {
		if int(i/8) < len(bitset) && bitset[i/8]&(1<<(i%8)) != 0 {
			rides = append(rides, park.RideID(i))
		}
	}
	return rides
}
