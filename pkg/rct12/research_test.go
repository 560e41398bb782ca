package rct12

import (
	"bytes"
	"errors"
	"testing"
)

func researchEntry(entryIndex, baseRideType, typ, flags, category uint8) []byte {
	return []byte{entryIndex, baseRideType, typ, flags, category}
}

func researchTerminator(value uint32) []byte {
	return []byte{uint8(value), uint8(value >> 8), uint8(value >> 16), uint8(value >> 24), 0}
}

func TestResearchItem_RoundTrip(t *testing.T) {
	buf := researchEntry(12, 52, ResearchEntryTypeRide, 0, 3)
	item, err := DecodeResearchItem(buf)
	if err != nil {
		t.Fatalf("DecodeResearchItem failed: %v", err)
	}
	if item.EntryIndex != 12 || item.BaseRideType != 52 || item.Category != 3 {
		t.Errorf("unexpected fields: %+v", item)
	}
	if !bytes.Equal(item.Encode(), buf) {
		t.Error("round trip mismatch")
	}
}

func TestResearchItem_Markers(t *testing.T) {
	sep, _ := DecodeResearchItem(researchTerminator(ResearchedItemsSeparator))
	end, _ := DecodeResearchItem(researchTerminator(ResearchedItemsEnd))
	end2, _ := DecodeResearchItem(researchTerminator(ResearchedItemsEnd2))

	if !sep.IsInventedEndMarker() || sep.IsUninventedEndMarker() || sep.IsRandomEndMarker() {
		t.Error("separator misclassified")
	}
	if !end.IsUninventedEndMarker() || end.IsInventedEndMarker() {
		t.Error("end marker misclassified")
	}
	if !end2.IsRandomEndMarker() || end2.IsUninventedEndMarker() {
		t.Error("stray marker misclassified")
	}
	// The fifth byte never takes part in the sentinel comparison.
	withCategory, _ := DecodeResearchItem(append(researchTerminator(ResearchedItemsEnd)[:4], 7))
	if !withCategory.IsUninventedEndMarker() {
		t.Error("category byte leaked into sentinel check")
	}
}

func TestDecodeResearchList_Partitions(t *testing.T) {
	var data []byte
	data = append(data, researchEntry(1, 10, ResearchEntryTypeRide, 0, 2)...)
	data = append(data, researchEntry(2, 11, ResearchEntryTypeScenery, 0, 4)...)
	data = append(data, researchTerminator(ResearchedItemsSeparator)...)
	data = append(data, researchEntry(3, 12, ResearchEntryTypeRide, 1, 1)...)
	data = append(data, researchTerminator(ResearchedItemsEnd)...)
	// Trailing garbage after the end marker must not be read.
	data = append(data, 0xAA, 0xBB)

	invented, uninvented, err := DecodeResearchList(data)
	if err != nil {
		t.Fatalf("DecodeResearchList failed: %v", err)
	}
	if len(invented) != 2 {
		t.Fatalf("len(invented) = %d", len(invented))
	}
	if len(uninvented) != 1 {
		t.Fatalf("len(uninvented) = %d", len(uninvented))
	}
	if invented[0].EntryIndex != 1 || invented[1].EntryIndex != 2 {
		t.Errorf("invented entries out of order: %+v", invented)
	}
	if uninvented[0].EntryIndex != 3 {
		t.Errorf("uninvented[0] = %+v", uninvented[0])
	}
}

func TestDecodeResearchList_StrayTerminatorSkipped(t *testing.T) {
	var data []byte
	data = append(data, researchEntry(1, 10, ResearchEntryTypeRide, 0, 2)...)
	data = append(data, researchTerminator(ResearchedItemsSeparator)...)
	data = append(data, researchTerminator(ResearchedItemsEnd2)...)
	data = append(data, researchEntry(4, 13, ResearchEntryTypeRide, 0, 5)...)
	data = append(data, researchTerminator(ResearchedItemsEnd)...)

	invented, uninvented, err := DecodeResearchList(data)
	if err != nil {
		t.Fatalf("DecodeResearchList failed: %v", err)
	}
	if len(invented) != 1 || len(uninvented) != 1 {
		t.Fatalf("partition sizes %d/%d", len(invented), len(uninvented))
	}
	if uninvented[0].EntryIndex != 4 {
		t.Errorf("stray terminator produced an entry: %+v", uninvented)
	}
}

func TestDecodeResearchList_EmptyPartitions(t *testing.T) {
	var data []byte
	data = append(data, researchTerminator(ResearchedItemsSeparator)...)
	data = append(data, researchTerminator(ResearchedItemsEnd)...)

	invented, uninvented, err := DecodeResearchList(data)
	if err != nil {
		t.Fatalf("DecodeResearchList failed: %v", err)
	}
	if len(invented) != 0 || len(uninvented) != 0 {
		t.Errorf("expected empty partitions, got %d/%d", len(invented), len(uninvented))
	}
}

func TestDecodeResearchList_MissingTerminator(t *testing.T) {
	data := researchEntry(1, 10, ResearchEntryTypeRide, 0, 2)
	if _, _, err := DecodeResearchList(data); !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("expected ErrTruncatedRecord, got %v", err)
	}
}
