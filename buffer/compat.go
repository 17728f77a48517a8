package buffer

import (
	"fmt"

	"github.com/coupergateway/base64url/base64url"
	"github.com/coupergateway/base64url/errors"
)

var (
	_ Factory = &Compat{}
	_ Buffer  = &compatBuffer{}
)

// Compat serves the base64url encoding in front of a host Factory.
// The host is never modified.
type Compat struct {
	host Factory
}

type compatBuffer struct {
	Buffer
}

func NewCompat(host Factory) *Compat {
	return &Compat{host: host}
}

// From decodes string values with the base64url encoding and wraps the
// bytes with the host factory. A non-string value with that encoding is a
// errors.TypeMismatch. Arguments after the base64url encoding name are
// ignored, as the host ignores them for string values. Every other call
// is forwarded to the host.
func (c *Compat) From(value interface{}, args ...interface{}) (Buffer, error) {
	if len(args) > 0 {
		if enc, ok := args[0].(string); ok && normalize(enc) == Base64URL {
			s, isString := value.(string)
			if !isString {
				return nil, errors.TypeMismatch.
					Message(fmt.Sprintf("the %q encoding requires a string, got %T", Base64URL, value))
			}

			data, err := base64url.Decode(s)
			if err != nil {
				return nil, err
			}
			return c.wrap(c.host.From(data))
		}
	}

	return c.wrap(c.host.From(value, args...))
}

// Wrap adds the base64url rendering to a buffer created by the host.
func (c *Compat) Wrap(buf Buffer) Buffer {
	if _, ok := buf.(*compatBuffer); ok || buf == nil {
		return buf
	}
	return &compatBuffer{Buffer: buf}
}

func (c *Compat) wrap(buf Buffer, err error) (Buffer, error) {
	if err != nil {
		return nil, err
	}
	return c.Wrap(buf), nil
}

func (b *compatBuffer) ToString(encoding string, bounds ...int) (string, error) {
	if normalize(encoding) == Base64URL {
		return base64url.Encode(slice(b.Bytes(), bounds)), nil
	}
	return b.Buffer.ToString(encoding, bounds...)
}

// Unwrap returns the host buffer.
func (b *compatBuffer) Unwrap() Buffer {
	return b.Buffer
}
