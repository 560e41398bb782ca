package rct12

import "fmt"

// ResearchItemSize is the on-disk size of a research list entry.
const ResearchItemSize = 5

// 32-bit terminator patterns read from the first four bytes of a
// research record. The stray extra terminator is a leftover of the
// first-generation format and must still be recognized and skipped.
const (
	ResearchedItemsSeparator uint32 = 0xFFFFFFFF
	ResearchedItemsEnd       uint32 = 0xFFFFFFFE
	ResearchedItemsEnd2      uint32 = 0xFFFFFFFD
)

// Research entry type discriminant values.
const (
	ResearchEntryTypeScenery uint8 = 0
	ResearchEntryTypeRide    uint8 = 1
)

// ResearchItem is one entry of the legacy research list.
type ResearchItem struct {
	EntryIndex   uint8
	BaseRideType uint8
	Type         uint8 // scenery or ride entry
	Flags        uint8
	Category     uint8
}

// RawValue returns the first four bytes as the 32-bit value the
// terminator sentinels are compared against. The sentinel check takes
// precedence over field interpretation.
func (r ResearchItem) RawValue() uint32 {
	return uint32(r.EntryIndex) | uint32(r.BaseRideType)<<8 | uint32(r.Type)<<16 | uint32(r.Flags)<<24
}

// IsInventedEndMarker reports the separator between researched and
// still-uninvented items.
func (r ResearchItem) IsInventedEndMarker() bool {
	return r.RawValue() == ResearchedItemsSeparator
}

// IsUninventedEndMarker reports the end of the research list.
func (r ResearchItem) IsUninventedEndMarker() bool {
	return r.RawValue() == ResearchedItemsEnd
}

// IsRandomEndMarker reports the redundant stray terminator.
func (r ResearchItem) IsRandomEndMarker() bool {
	return r.RawValue() == ResearchedItemsEnd2
}

// DecodeResearchItem decodes a single 5-byte record.
func DecodeResearchItem(data []byte) (ResearchItem, error) {
	if len(data) < ResearchItemSize {
		return ResearchItem{}, fmt.Errorf("%w: research item needs %d bytes", ErrTruncatedRecord, ResearchItemSize)
	}
	return ResearchItem{
		EntryIndex:   data[0],
		BaseRideType: data[1],
		Type:         data[2],
		Flags:        data[3],
		Category:     data[4],
	}, nil
}

// Encode returns the 5-byte on-disk form.
func (r ResearchItem) Encode() []byte {
	return []byte{r.EntryIndex, r.BaseRideType, r.Type, r.Flags, r.Category}
}

// DecodeResearchList decodes a flat sequence of research records into
// the invented and uninvented partitions. Reading stops at the first
// end terminator; a redundant stray terminator immediately after it is
// consumed without producing an entry.
func DecodeResearchList(data []byte) (invented, uninvented []ResearchItem, err error) {
	seenSeparator := false
	for off := 0; ; off += ResearchItemSize {
		item, err := DecodeResearchItem(data[off:])
		if err != nil {
			return nil, nil, fmt.Errorf("research list at offset %d: %w", off, err)
		}
		switch {
		case item.IsUninventedEndMarker():
			return invented, uninvented, nil
		case item.IsInventedEndMarker():
			seenSeparator = true
		case item.IsRandomEndMarker():
			// Stray leftover terminator, skip.
		case seenSeparator:
			uninvented = append(uninvented, item)
		default:
			invented = append(invented, item)
		}
	}
}
