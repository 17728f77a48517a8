package lib

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/coupergateway/base64url/buffer"
)

const FnTranscode = "transcode"

// NewTranscodeFunction converts a string between two encodings
// known by the given buffer factory.
func NewTranscodeFunction(factory buffer.Factory) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "str", Type: cty.String},
			{Name: "from", Type: cty.String},
			{Name: "to", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			buf, err := factory.From(args[0].AsString(), args[1].AsString())
			if err != nil {
				return cty.StringVal(""), err
			}

			result, err := buf.ToString(args[2].AsString())
			if err != nil {
				return cty.StringVal(""), err
			}
			return cty.StringVal(result), nil
		},
	})
}
