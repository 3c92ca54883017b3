package bitfilter

import "encoding/binary"

// Encoder appends the canonical byte form of v to dst and returns the
// extended slice.
//
// Encoders must be deterministic: logically equal values must produce equal
// bytes, otherwise an inserted element can be reported absent.
type Encoder[T any] func(dst []byte, v T) []byte

// Hashable is implemented by types that know their own canonical encoding.
type Hashable interface {
	AppendHashKey(dst []byte) []byte
}

// stringTerminator follows every encoded string so that no encoding is a
// prefix of another.
const stringTerminator = 0xFF

// StringEncoder encodes s as its raw bytes followed by a 0xFF terminator.
// 0xFF never occurs in valid UTF-8.
func StringEncoder(dst []byte, s string) []byte {
	dst = append(dst, s...)
	return append(dst, stringTerminator)
}

// BytesEncoder encodes b as an 8-byte little-endian length followed by b.
func BytesEncoder(dst []byte, b []byte) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(b)))
	return append(dst, b...)
}

// Uint64Encoder encodes v as 8 little-endian bytes.
func Uint64Encoder(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// Int64Encoder encodes v as 8 little-endian bytes (two's complement).
func Int64Encoder(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

// HashableEncoder returns an Encoder that delegates to T's AppendHashKey.
func HashableEncoder[T Hashable]() Encoder[T] {
	return func(dst []byte, v T) []byte {
		return v.AppendHashKey(dst)
	}
}
