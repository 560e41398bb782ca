// Package sawyer implements the chunked container encoding used by
// legacy park save and scenario files. Each chunk is a one-byte
// encoding tag and a 32-bit payload length followed by the encoded
// payload; files end in a rolling byte-sum checksum.
package sawyer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

// Codec errors.
var (
	ErrUnknownEncoding = errors.New("unknown chunk encoding")
	ErrTruncatedChunk  = errors.New("truncated chunk")
	ErrCorruptChunk    = errors.New("corrupt chunk data")
)

// ChunkHeaderSize is the encoded size of a chunk header.
const ChunkHeaderSize = 5

// Encoding is the per-chunk payload encoding tag.
type Encoding uint8

const (
	EncodingNone Encoding = iota
	EncodingRLE
	EncodingRLECompressed
	EncodingRotate
)

// String returns a human-readable encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingRLE:
		return "rle"
	case EncodingRLECompressed:
		return "rle+repeat"
	case EncodingRotate:
		return "rotate"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
}

// Chunk is one decoded container chunk.
type Chunk struct {
	Encoding Encoding
	Data     []byte
}

// ReadChunk reads and decodes the next chunk.
func ReadChunk(r io.Reader) (*Chunk, error) {
	var header [ChunkHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedChunk
		}
		return nil, err
	}
	encoding := Encoding(header[0])
	length := binary.LittleEndian.Uint32(header[1:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrTruncatedChunk
	}

	data, err := Decode(encoding, payload)
	if err != nil {
		return nil, err
	}
	return &Chunk{Encoding: encoding, Data: data}, nil
}

// Write encodes the chunk and writes it with its header. Chunks with
// the read-only rle+repeat encoding are written as plain RLE.
func (c *Chunk) Write(w io.Writer) error {
	encoding := c.Encoding
	if encoding == EncodingRLECompressed {
		encoding = EncodingRLE
	}
	payload, err := Encode(encoding, c.Data)
	if err != nil {
		return err
	}
	var header [ChunkHeaderSize]byte
	header[0] = byte(encoding)
	binary.LittleEndian.PutUint32(header[1:], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode decodes a chunk payload.
func Decode(encoding Encoding, payload []byte) ([]byte, error) {
	switch encoding {
	case EncodingNone:
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	case EncodingRLE:
		return decodeRLE(payload)
	case EncodingRLECompressed:
		data, err := decodeRLE(payload)
		if err != nil {
			return nil, err
		}
		return decodeRepeat(data)
	case EncodingRotate:
		return decodeRotate(payload), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(encoding))
	}
}

// Encode encodes a chunk payload. The rle+repeat encoding is decode
// only; writers use plain RLE instead.
func Encode(encoding Encoding, data []byte) ([]byte, error) {
	switch encoding {
	case EncodingNone:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case EncodingRLE, EncodingRLECompressed:
		return encodeRLE(data), nil
	case EncodingRotate:
		return encodeRotate(data), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(encoding))
	}
}

// decodeRLE expands the run-length encoding: a negative count byte n
// repeats the following byte 1-n times, a non-negative count byte
// copies the following n+1 bytes literally.
func decodeRLE(payload []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(payload); {
		count := int8(payload[i])
		i++
		if count < 0 {
			if i >= len(payload) {
				return nil, fmt.Errorf("%w: rle run past end", ErrCorruptChunk)
			}
			n := 1 - int(count)
			for j := 0; j < n; j++ {
				out = append(out, payload[i])
			}
			i++
		} else {
			n := int(count) + 1
			if i+n > len(payload) {
				return nil, fmt.Errorf("%w: rle literal past end", ErrCorruptChunk)
			}
			out = append(out, payload[i:i+n]...)
			i += n
		}
	}
	return out, nil
}

// encodeRLE produces run-length encoded output, emitting runs of three
// or more identical bytes as repeats and everything else as literals.
func encodeRLE(data []byte) []byte {
	var out []byte
	for i := 0; i < len(data); {
		run := 1
		for i+run < len(data) && data[i+run] == data[i] && run < 125 {
			run++
		}
		if run >= 3 {
			out = append(out, byte(int8(1-run)), data[i])
			i += run
			continue
		}
		// Literal segment up to the next run of three.
		start := i
		for i < len(data) && i-start < 127 {
			if i+2 < len(data) && data[i] == data[i+1] && data[i] == data[i+2] {
				break
			}
			i++
		}
		out = append(out, byte(i-start-1))
		out = append(out, data[start:i]...)
	}
	return out
}

// decodeRepeat expands the back-reference encoding applied on top of
// RLE: 0xFF escapes a literal byte; any other byte packs a copy count
// in its low three bits and a negative offset in the rest.
func decodeRepeat(data []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(data); {
		c := data[i]
		i++
		if c == 0xFF {
			if i >= len(data) {
				return nil, fmt.Errorf("%w: repeat literal past end", ErrCorruptChunk)
			}
			out = append(out, data[i])
			i++
			continue
		}
		count := int(c&7) + 1
		offset := int(c>>3) - 32
		src := len(out) + offset
		if src < 0 || src+count > len(out) {
			return nil, fmt.Errorf("%w: repeat back-reference out of range", ErrCorruptChunk)
		}
		out = append(out, out[src:src+count]...)
	}
	return out, nil
}

// decodeRotate undoes the rolling bit rotation: byte n is rotated left
// by a code that starts at 1 and advances by two per byte, wrapping at
// eight.
func decodeRotate(payload []byte) []byte {
	out := make([]byte, len(payload))
	code := 1
	for i, b := range payload {
		out[i] = bits.RotateLeft8(b, code)
		code = (code + 2) & 7
	}
	return out
}

func encodeRotate(data []byte) []byte {
	out := make([]byte, len(data))
	code := 1
	for i, b := range data {
		out[i] = bits.RotateLeft8(b, -code)
		code = (code + 2) & 7
	}
	return out
}

// Checksum is the rolling byte sum appended to legacy save files.
func Checksum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return sum
}
