package lib

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/coupergateway/base64url/buffer"
)

const (
	FnBase64Decode = "base64_decode"
	FnBase64Encode = "base64_encode"
)

// NewBase64DecodeFunction decodes standard base64 with the given factory.
func NewBase64DecodeFunction(factory buffer.Factory) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name: "str",
			Type: cty.String,
		}},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			buf, err := factory.From(args[0].AsString(), "base64")
			if err != nil {
				return cty.StringVal(""), err
			}
			result, err := buf.ToString("utf8")
			return cty.StringVal(result), err
		},
	})
}

func NewBase64EncodeFunction(factory buffer.Factory) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name: "str",
			Type: cty.String,
		}},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			buf, err := factory.From(args[0].AsString())
			if err != nil {
				return cty.StringVal(""), err
			}
			result, err := buf.ToString("base64")
			return cty.StringVal(result), err
		},
	})
}
