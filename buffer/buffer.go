// Package buffer adds the base64url encoding to a byte buffer API.
//
// A Factory creates buffers from encoded strings, byte slices or other
// buffers, a Buffer renders its bytes as encoded text. Compat decorates
// any Factory: calls naming the "base64url" encoding are served by the
// base64url package, every other call is forwarded to the host unchanged.
package buffer

import "strings"

// Base64URL is the encoding name served by Compat.
const Base64URL = "base64url"

type Buffer interface {
	Bytes() []byte
	Len() int
	// ToString renders the bytes in the given encoding. The optional
	// bounds are the start and end offset of the rendered range.
	ToString(encoding string, bounds ...int) (string, error)
}

type Factory interface {
	// From creates a buffer of value. The first argument is either an
	// encoding name for string values or a byte offset followed
	// by an optional length for byte values.
	From(value interface{}, args ...interface{}) (Buffer, error)
}

func normalize(encoding string) string {
	return strings.ToLower(strings.TrimSpace(encoding))
}

// slice applies the start and end bounds to b. Out of range
// bounds are clamped to the length of b.
func slice(b []byte, bounds []int) []byte {
	start, end := 0, len(b)
	if len(bounds) > 0 {
		start = clamp(bounds[0], len(b))
	}
	if len(bounds) > 1 {
		end = clamp(bounds[1], len(b))
	}
	if end < start {
		return b[:0]
	}
	return b[start:end]
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
