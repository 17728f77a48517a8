package eval

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/coupergateway/base64url/errors"
)

// ValueToString renders strings as they are and every other value as JSON.
func ValueToString(val cty.Value) (string, error) {
	if !val.IsWhollyKnown() {
		return "", errors.Evaluation.Message("value is unknown")
	}

	if val.Type() == cty.String && !val.IsNull() {
		return val.AsString(), nil
	}

	b, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", errors.Evaluation.With(err)
	}
	return string(b), nil
}
