package base

import "fmt"

// DecodeVarInt reads a single VarInt from the byte slice.
// Returns the value and the number of bytes read.
func DecodeVarInt(data []byte) (int, int, error) {
	var value, length int
	for {
		if length >= len(data) {
			return 0, 0, fmt.Errorf("varint extends beyond data")
		}
		b := int(data[length])
		value |= (b & 0x7F) << (length * 7)
		length++
		if length > 5 {
			return 0, 0, fmt.Errorf("varint too long")
		}
		if (b & 0x80) == 0 {
			break
		}
	}
	return value, length, nil
}

// DecodeVarIntArray decodes count VarInts from a byte slice.
func DecodeVarIntArray(data []byte, count int) ([]int, error) {
	values := make([]int, count)
	offset := 0
	for i := range count {
		val, length, err := DecodeVarInt(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("decode varint %d: %w", i, err)
		}
		values[i] = val
		offset += length
	}
	if offset != len(data) {
		return nil, fmt.Errorf("%d trailing bytes after %d varints", len(data)-offset, count)
	}
	return values, nil
}

// AppendVarInt appends value to dst as a little-endian base-128 VarInt:
// 7 bits per byte, high bit set on every byte but the last.
func AppendVarInt(dst []byte, value int) []byte {
	v := uint32(value)
	for v > 0x7F {
		dst = append(dst, byte(v&0x7F)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}
