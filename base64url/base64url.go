package base64url

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/coupergateway/base64url/errors"
)

// ChunkSize is the amount of bytes handed to the base64 encoder at once.
const ChunkSize = 8192

var (
	toURLAlphabet   = strings.NewReplacer("+", "-", "/", "_")
	fromURLAlphabet = strings.NewReplacer("-", "+", "_", "/")
	// Strict rejects non-zero trailing bits in the last quantum.
	stdStrict = base64.StdEncoding.Strict()
)

// Encode returns the unpadded base64url representation of data.
func Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow(base64.StdEncoding.EncodedLen(len(data)))

	// Writes to a strings.Builder never fail.
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	for start := 0; start < len(data); start += ChunkSize {
		end := min(start+ChunkSize, len(data))
		_, _ = enc.Write(data[start:end])
	}
	_ = enc.Close()

	return strings.TrimRight(toURLAlphabet.Replace(sb.String()), "=")
}

// EncodeString encodes the UTF-8 bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// EncodeAny accepts either text or bytes.
func EncodeAny[T ~string | ~[]byte](input T) string {
	return Encode([]byte(input))
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	return base64.RawURLEncoding.EncodedLen(n)
}

// DecodedLen returns the amount of bytes represented by n encoded characters.
func DecodedLen(n int) int {
	return base64.RawURLEncoding.DecodedLen(n)
}

// Decode returns the bytes represented by the base64url string data.
// An empty string results in an empty, non-nil byte slice.
func Decode(data string) ([]byte, error) {
	if idx := invalidIndex(data); idx > -1 {
		return nil, errors.Decode.Kind("invalid_character").
			Message(fmt.Sprintf("invalid character %q", data[idx])).
			With(base64.CorruptInputError(idx))
	}

	if len(data)%4 == 1 {
		return nil, errors.Decode.Kind("invalid_length").
			Message("invalid base64url string length")
	}

	data = fromURLAlphabet.Replace(data)
	if padLen := (4 - len(data)%4) % 4; padLen > 0 {
		data += strings.Repeat("=", padLen)
	}

	result, err := stdStrict.DecodeString(data)
	if err != nil {
		return nil, errors.Decode.Message("invalid base64url string").With(err)
	}
	return result, nil
}

// DecodeToString decodes data and requires the result to be valid UTF-8.
func DecodeToString(data string) (string, error) {
	b, err := decodeText(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeToStringLossy decodes data and replaces every invalid
// UTF-8 byte with the replacement character U+FFFD.
func DecodeToStringLossy(data string) (string, error) {
	b, err := Decode(data)
	if err != nil {
		return "", err
	}

	text, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.TextDecode.With(err)
	}
	return string(text), nil
}

func decodeText(data string) ([]byte, error) {
	b, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if idx := invalidUTF8Index(b); idx > -1 {
		return nil, errors.TextDecode.
			Message(fmt.Sprintf("invalid UTF-8 sequence at byte %d", idx))
	}
	return b, nil
}

// invalidIndex returns the position of the first byte outside
// of the URL safe alphabet or -1.
func invalidIndex(data string) int {
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case 'A' <= c && c <= 'Z',
			'a' <= c && c <= 'z',
			'0' <= c && c <= '9',
			c == '-', c == '_':
			continue
		}
		return i
	}
	return -1
}

func invalidUTF8Index(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
