package base64url

import (
	"bytes"
	"encoding/json"

	"github.com/coupergateway/base64url/errors"
)

// EncodeJSON serializes v to its compact JSON text and encodes it.
// HTML characters are not escaped and no trailing newline is added.
func EncodeJSON(v interface{}) (string, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", errors.Serialization.With(err)
	}
	return Encode(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// DecodeJSON decodes data and parses the resulting text into a value
// of type T. The shape of the parsed value is not validated beyond what
// json.Unmarshal requires for T; see DecodeJSONWith.
func DecodeJSON[T any](data string) (T, error) {
	var result T

	b, err := decodeText(data)
	if err != nil {
		return result, err
	}

	if err = json.Unmarshal(b, &result); err != nil {
		return result, errors.Parse.With(err)
	}
	return result, nil
}

// DecodeJSONWith works like DecodeJSON and passes the parsed value to validate.
// A validation error is returned as errors.Parse of the "validation" kind.
func DecodeJSONWith[T any](data string, validate func(T) error) (T, error) {
	result, err := DecodeJSON[T](data)
	if err != nil || validate == nil {
		return result, err
	}

	if err = validate(result); err != nil {
		var zero T
		return zero, errors.Parse.Kind("validation").Label("validation").With(err)
	}
	return result, nil
}
