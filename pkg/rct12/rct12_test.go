package rct12

import (
	"bytes"
	"errors"
	"testing"
)

func TestXY8_Packed(t *testing.T) {
	c := XY8{X: 0x34, Y: 0x12}
	if c.Packed() != 0x1234 {
		t.Errorf("Packed() = %#x", c.Packed())
	}
}

func TestXY8_IsNull(t *testing.T) {
	tests := []struct {
		c    XY8
		want bool
	}{
		{XY8{0xFF, 0xFF}, true},
		// A single 0xFF component is a valid edge coordinate, not the
		// sentinel.
		{XY8{0xFF, 0x00}, false},
		{XY8{0x00, 0xFF}, false},
		{XY8{0, 0}, false},
	}
	for _, tc := range tests {
		if got := tc.c.IsNull(); got != tc.want {
			t.Errorf("%+v: IsNull() = %v", tc.c, got)
		}
	}
}

func TestXY8_SetNull(t *testing.T) {
	c := XY8{X: 10, Y: 20}
	c.SetNull()
	if !c.IsNull() {
		t.Errorf("after SetNull: %+v", c)
	}
}

func TestXY8_RoundTrip(t *testing.T) {
	buf := []byte{200, 100}
	c, err := DecodeXY8(buf)
	if err != nil {
		t.Fatalf("DecodeXY8 failed: %v", err)
	}
	if c.X != 200 || c.Y != 100 {
		t.Errorf("decoded %+v", c)
	}
	if !bytes.Equal(c.Encode(), buf) {
		t.Error("round trip mismatch")
	}
}

func TestDecodeXY8_Truncated(t *testing.T) {
	if _, err := DecodeXY8([]byte{1}); !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("expected ErrTruncatedRecord, got %v", err)
	}
}
