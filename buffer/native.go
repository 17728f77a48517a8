package buffer

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coupergateway/base64url/errors"
)

var (
	_ Factory = Native{}
	_ Buffer  = &nativeBuffer{}
)

// Native is a plain byte buffer host. It knows the encodings utf8, hex,
// base64, latin1 and ascii but not base64url.
type Native struct{}

type nativeBuffer struct {
	data []byte
}

var lenientBase64 = strings.NewReplacer("-", "+", "_", "/", "=", "")

// From accepts strings, byte slices, buffers and integer slices whose
// values are truncated to bytes. The result never shares memory with value.
func (n Native) From(value interface{}, args ...interface{}) (Buffer, error) {
	switch v := value.(type) {
	case string:
		encoding := "utf8"
		if len(args) > 0 {
			enc, ok := args[0].(string)
			if !ok {
				return nil, errors.TypeMismatch.
					Message(fmt.Sprintf("encoding must be a string, got %T", args[0]))
			}
			encoding = enc
		}
		b, err := fromString(v, encoding)
		if err != nil {
			return nil, err
		}
		return &nativeBuffer{data: b}, nil
	case []byte:
		return fromBytes(v, args)
	case Buffer:
		return fromBytes(v.Bytes(), args)
	case []int:
		b := make([]byte, len(v))
		for i, c := range v {
			b[i] = byte(c)
		}
		return &nativeBuffer{data: b}, nil
	default:
		return nil, errors.TypeMismatch.
			Message(fmt.Sprintf("cannot create a buffer from %T", value))
	}
}

func fromBytes(b []byte, args []interface{}) (Buffer, error) {
	offset, length := 0, len(b)
	if len(args) > 0 {
		i, ok := args[0].(int)
		if !ok {
			return nil, errors.TypeMismatch.
				Message(fmt.Sprintf("offset must be an integer, got %T", args[0]))
		}
		if i < 0 || i > len(b) {
			return nil, errors.OutOfRange.Message(`"offset" is outside of buffer bounds`)
		}
		offset, length = i, len(b)-i
	}
	if len(args) > 1 {
		l, ok := args[1].(int)
		if !ok {
			return nil, errors.TypeMismatch.
				Message(fmt.Sprintf("length must be an integer, got %T", args[1]))
		}
		if l < 0 || offset+l > len(b) {
			return nil, errors.OutOfRange.Message(`"length" is outside of buffer bounds`)
		}
		length = l
	}

	data := make([]byte, length)
	copy(data, b[offset:offset+length])
	return &nativeBuffer{data: data}, nil
}

func fromString(s, encoding string) ([]byte, error) {
	switch normalize(encoding) {
	case "utf8", "utf-8":
		return []byte(s), nil
	case "hex":
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Decode.Message("invalid hex string").With(err)
		}
		return b, nil
	case "base64":
		// Both alphabets and missing padding are accepted.
		b, err := base64.RawStdEncoding.DecodeString(lenientBase64.Replace(s))
		if err != nil {
			return nil, errors.Decode.Message("invalid base64 string").With(err)
		}
		return b, nil
	case "latin1", "binary", "ascii":
		b := make([]byte, 0, len(s))
		for _, r := range s {
			b = append(b, byte(r))
		}
		return b, nil
	default:
		return nil, errors.UnknownEncoding.Message(encoding)
	}
}

func (b *nativeBuffer) Bytes() []byte {
	return b.data
}

func (b *nativeBuffer) Len() int {
	return len(b.data)
}

func (b *nativeBuffer) ToString(encoding string, bounds ...int) (string, error) {
	data := slice(b.data, bounds)
	switch normalize(encoding) {
	case "", "utf8", "utf-8":
		if utf8.Valid(data) {
			return string(data), nil
		}
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
	case "hex":
		return hex.EncodeToString(data), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(data), nil
	case "latin1", "binary":
		return latin1(data, 0xff), nil
	case "ascii":
		return latin1(data, 0x7f), nil
	default:
		return "", errors.UnknownEncoding.Message(encoding)
	}
}

func latin1(data []byte, mask byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, c := range data {
		sb.WriteRune(rune(c & mask))
	}
	return sb.String()
}
