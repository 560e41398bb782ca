package rct12

import (
	"strings"
	"unicode/utf8"
)

// Reserved in-band control byte ranges of legacy strings. The argument
// range is inclusive on both ends; the colour range end is exclusive.
const (
	StringFormatArgStart    uint8 = 123
	StringFormatArgEnd      uint8 = 141
	StringFormatColourStart uint8 = 142
	StringFormatColourEnd   uint8 = 156
)

// Legacy single-byte layout codes that survive conversion.
const (
	stringFormatNewline        uint8 = 5
	stringFormatNewlineSmaller uint8 = 6
)

// Argument placeholder names, indexed from StringFormatArgStart.
var formatArgTokens = [...]string{
	"COMMA32", "INT32", "COMMA2DP32", "COMMA16", "UINT16",
	"CURRENCY2DP", "CURRENCY", "STRINGID", "STRINGID2", "STRING",
	"MONTHYEAR", "MONTH", "VELOCITY", "POP16", "PUSH16",
	"DURATION", "REALTIME", "LENGTH", "SPRITE",
}

// Colour placeholder names, indexed from StringFormatColourStart.
var colourTokens = [...]string{
	"BLACK", "GREY", "WHITE", "RED", "GREEN", "YELLOW", "TOPAZ",
	"CELADON", "BABYBLUE", "PALELAVENDER", "PALEGOLD", "LIGHTPINK",
	"PEARLAQUA", "PALESILVER",
}

var tokenToLegacyByte = func() map[string]uint8 {
	m := make(map[string]uint8, len(formatArgTokens)+len(colourTokens)+2)
	for i, name := range formatArgTokens {
		m[name] = StringFormatArgStart + uint8(i)
	}
	for i, name := range colourTokens {
		m[name] = StringFormatColourStart + uint8(i)
	}
	m["NEWLINE"] = stringFormatNewline
	m["NEWLINE_SMALLER"] = stringFormatNewlineSmaller
	return m
}()

func isFormatArgCode(b uint8) bool {
	return b >= StringFormatArgStart && b <= StringFormatArgEnd
}

func isColourCode(b uint8) bool {
	return b >= StringFormatColourStart && b < StringFormatColourEnd
}

// IsLikelyUTF8 reports whether a buffer looks like valid UTF-8 text
// with at least one multi-byte sequence. Legacy strings fail this
// heuristic, which decides whether legacy-string remapping applies.
func IsLikelyUTF8(s string) bool {
	hasMultiByte := false
	for i := 0; i < len(s); {
		if s[i] < 0x80 {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		hasMultiByte = true
		i += size
	}
	return hasMultiByte
}

// RemoveFormattingCodes strips all legacy in-band control bytes,
// keeping only the text payload.
func RemoveFormattingCodes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0 {
			break
		}
		if c < 32 || isFormatArgCode(c) || isColourCode(c) {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ConvertFormattedStringToModern translates legacy in-band control
// bytes into the modern {NAME} placeholder scheme. Reading stops at
// the first NUL. Control bytes with no modern counterpart are dropped.
func ConvertFormattedStringToModern(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0:
			return b.String()
		case c == stringFormatNewline:
			b.WriteString("{NEWLINE}")
		case c == stringFormatNewlineSmaller:
			b.WriteString("{NEWLINE_SMALLER}")
		case isFormatArgCode(c):
			b.WriteByte('{')
			b.WriteString(formatArgTokens[c-StringFormatArgStart])
			b.WriteByte('}')
		case isColourCode(c):
			b.WriteByte('{')
			b.WriteString(colourTokens[c-StringFormatColourStart])
			b.WriteByte('}')
		case c < 32:
			// No modern counterpart.
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ConvertFormattedStringToLegacy translates modern {NAME} placeholders
// back into legacy control bytes and truncates the result to
// maxLength bytes without splitting a multi-byte sequence. Unknown
// placeholders are dropped.
func ConvertFormattedStringToLegacy(s string, maxLength int) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '{' {
			end := strings.IndexByte(s[i:], '}')
			if end > 0 {
				if code, ok := tokenToLegacyByte[s[i+1:i+end]]; ok {
					b.WriteByte(code)
				}
				i += end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return TruncateLegacyString(b.String(), maxLength)
}

// TruncateLegacyString truncates a string to at most maxLength bytes,
// dropping a trailing incomplete multi-byte sequence rather than
// splitting it.
func TruncateLegacyString(s string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if len(s) <= maxLength {
		return s
	}
	end := 0
	for i := 0; i < len(s); {
		size := 1
		if s[i] >= 0x80 {
			_, size = utf8.DecodeRuneInString(s[i:])
		}
		if i+size > maxLength {
			break
		}
		i += size
		end = i
	}
	return s[:end]
}
