package lib

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/coupergateway/base64url/base64url"
	"github.com/coupergateway/base64url/errors"
)

const (
	FnBase64URLDecode     = "base64url_decode"
	FnBase64URLDecodeJSON = "base64url_decode_json"
	FnBase64URLEncode     = "base64url_encode"
	FnBase64URLEncodeJSON = "base64url_encode_json"
)

var (
	Base64URLDecodeFunc     = newBase64URLDecodeFunction()
	Base64URLDecodeJSONFunc = newBase64URLDecodeJSONFunction()
	Base64URLEncodeFunc     = newBase64URLEncodeFunction()
	Base64URLEncodeJSONFunc = newBase64URLEncodeJSONFunction()
)

func newBase64URLDecodeFunction() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name: "str",
			Type: cty.String,
		}},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			result, err := base64url.DecodeToString(args[0].AsString())
			if err != nil {
				return cty.StringVal(""), err
			}
			return cty.StringVal(result), nil
		},
	})
}

func newBase64URLEncodeFunction() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name: "str",
			Type: cty.String,
		}},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			return cty.StringVal(base64url.EncodeString(args[0].AsString())), nil
		},
	})
}

func newBase64URLEncodeJSONFunction() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name:             "val",
			Type:             cty.DynamicPseudoType,
			AllowDynamicType: true,
			AllowNull:        true,
		}},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			val := args[0]
			if !val.IsWhollyKnown() {
				return cty.UnknownVal(cty.String), nil
			}

			raw, err := ctyjson.Marshal(val, val.Type())
			if err != nil {
				return cty.StringVal(""), errors.Serialization.With(err)
			}

			result, err := base64url.EncodeJSON(json.RawMessage(raw))
			if err != nil {
				return cty.StringVal(""), err
			}
			return cty.StringVal(result), nil
		},
	})
}

func newBase64URLDecodeJSONFunction() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{
			Name: "str",
			Type: cty.String,
		}},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			raw, err := base64url.DecodeJSON[json.RawMessage](args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			impliedType, err := ctyjson.ImpliedType(raw)
			if err != nil {
				return cty.NilVal, errors.Parse.With(err)
			}

			val, err := ctyjson.Unmarshal(raw, impliedType)
			if err != nil {
				return cty.NilVal, errors.Parse.With(err)
			}
			return val, nil
		},
	})
}
