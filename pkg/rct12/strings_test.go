package rct12

import "testing"

func TestIsLikelyUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain ascii", "Dinky Park", false},
		{"empty", "", false},
		{"valid multibyte", "Caf\xc3\xa9 Ride", true},
		{"legacy high bytes", "Caf\xe9 Ride", false},
		{"control bytes only", "\x05\x8e", false},
		{"three byte sequence", "\xe2\x82\xac50", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLikelyUTF8(tc.in); got != tc.want {
				t.Errorf("IsLikelyUTF8(%q) = %v", tc.in, got)
			}
		})
	}
}

func TestRemoveFormattingCodes(t *testing.T) {
	in := "\x8eWelcome\x05to \x7bDinky Park"
	// 0x8e is a colour code, 0x05 a newline, 0x7b the COMMA32 argument
	// code. All are stripped; printable text survives.
	if got := RemoveFormattingCodes(in); got != "Welcometo Dinky Park" {
		t.Errorf("RemoveFormattingCodes = %q", got)
	}
}

func TestRemoveFormattingCodes_StopsAtNul(t *testing.T) {
	if got := RemoveFormattingCodes("abc\x00def"); got != "abc" {
		t.Errorf("RemoveFormattingCodes = %q", got)
	}
}

func TestConvertFormattedStringToModern(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Haunted House 1", "Haunted House 1"},
		{"newline", "a\x05b", "a{NEWLINE}b"},
		{"newline smaller", "a\x06b", "a{NEWLINE_SMALLER}b"},
		{"first arg code", "\x7b guests", "{COMMA32} guests"},
		{"last arg code", "cost \x8d", "cost {SPRITE}"},
		{"first colour", "\x8etext", "{BLACK}text"},
		{"last colour", "\x9btext", "{PALESILVER}text"},
		{"byte past colour range kept", "\x9ctext", "\x9ctext"},
		{"stops at nul", "abc\x00\x05def", "abc"},
		{"unmapped control dropped", "a\x01b", "ab"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConvertFormattedStringToModern(tc.in); got != tc.want {
				t.Errorf("got %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestConvertFormattedStringToLegacy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain", "Haunted House", 32, "Haunted House"},
		{"newline", "a{NEWLINE}b", 32, "a\x05b"},
		{"arg code", "{CURRENCY2DP} fee", 32, "\x80 fee"},
		{"colour code", "{RED}alert", 32, "\x91alert"},
		{"unknown token dropped", "a{BOGUS}b", 32, "ab"},
		{"unterminated brace literal", "a{b", 32, "a{b"},
		{"truncated", "abcdefgh", 4, "abcd"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConvertFormattedStringToLegacy(tc.in, tc.max); got != tc.want {
				t.Errorf("got %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestTruncateLegacyString(t *testing.T) {
	// Truncation must never split a multi-byte sequence.
	s := "ab\xc3\xa9cd"
	tests := []struct {
		max  int
		want string
	}{
		{6, "ab\xc3\xa9cd"},
		{5, "ab\xc3\xa9c"},
		{4, "ab\xc3\xa9"},
		{3, "ab"},
		{2, "ab"},
		{0, ""},
		{-1, ""},
	}
	for _, tc := range tests {
		if got := TruncateLegacyString(s, tc.max); got != tc.want {
			t.Errorf("max %d: got %q, expected %q", tc.max, got, tc.want)
		}
	}
}
