package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Envelope layout:
//
//	[magic "PRMC"][version u8][compression u8][name len u8][codec name]
//	[uncompressed size u32 LE][payload]
var magic = []byte("PRMC")

const envelopeVersion = 1

// ErrMalformed is returned when a blob is not a valid envelope.
var ErrMalformed = errors.New("malformed envelope")

// Encode marshals v with c, compresses it with comp and wraps it in a
// self-describing envelope. A nil c selects Default.
func Encode(c Codec, comp Compression, v any) ([]byte, error) {
	if c == nil {
		c = Default
	}
	raw, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	payload, applied, err := compress(raw, comp)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", comp, err)
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name too long: %q", name)
	}

	var buf bytes.Buffer
	buf.Grow(len(magic) + 3 + len(name) + 4 + len(payload))
	buf.Write(magic)
	buf.WriteByte(envelopeVersion)
	buf.WriteByte(byte(applied))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(raw))))
	buf.Write(payload)
	return buf.Bytes(), nil
}

// Decode unwraps an envelope produced by Encode and unmarshals it into v
// using the codec named in the header.
func Decode(data []byte, v any) error {
	if len(data) < len(magic)+3 || !bytes.Equal(data[:len(magic)], magic) {
		return fmt.Errorf("%w: bad magic", ErrMalformed)
	}
	data = data[len(magic):]

	if data[0] != envelopeVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformed, data[0])
	}
	comp := Compression(data[1])
	nameLen := int(data[2])
	data = data[3:]

	if len(data) < nameLen+4 {
		return fmt.Errorf("%w: truncated header", ErrMalformed)
	}
	name := string(data[:nameLen])
	size := int(binary.LittleEndian.Uint32(data[nameLen:]))
	data = data[nameLen+4:]

	c, ok := ByName(name)
	if !ok {
		return fmt.Errorf("%w: unknown codec %q", ErrMalformed, name)
	}
	raw, err := decompress(data, comp, size)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return c.Unmarshal(raw, v)
}
