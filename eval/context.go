package eval

import (
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/errors"
	"github.com/coupergateway/base64url/eval/lib"
)

const Environment = "env"

// ParseExpression parses a single hcl expression.
func ParseExpression(src string) (hcl.Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "expression", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Evaluation.Label("parse").With(diags)
	}
	return expr, nil
}

// NewContext creates the evaluation context for expr. The env variable
// holds every environment variable referenced by expr.
func NewContext(factory buffer.Factory, expr hcl.Expression) *hcl.EvalContext {
	var envKeys []string
	if expr != nil {
		envKeys = decodeEnvironmentRefs(expr)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			Environment: newCtyEnvMap(envKeys),
		},
		Functions: newFunctionsMap(factory),
	}
}

// Evaluate parses and evaluates src.
func Evaluate(factory buffer.Factory, src string) (cty.Value, error) {
	expr, err := ParseExpression(src)
	if err != nil {
		return cty.NilVal, err
	}

	val, diags := expr.Value(NewContext(factory, expr))
	if diags.HasErrors() {
		return cty.NilVal, errors.Evaluation.With(diags)
	}
	return val, nil
}

func newCtyEnvMap(envKeys []string) cty.Value {
	if len(envKeys) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	ctyMap := make(map[string]cty.Value)
	for _, key := range envKeys {
		ctyMap[key] = cty.StringVal(os.Getenv(key))
	}
	return cty.MapVal(ctyMap)
}

// Functions
func newFunctionsMap(factory buffer.Factory) map[string]function.Function {
	return map[string]function.Function{
		"to_upper":                stdlib.UpperFunc,
		"to_lower":                stdlib.LowerFunc,
		lib.FnBase64Decode:        lib.NewBase64DecodeFunction(factory),
		lib.FnBase64Encode:        lib.NewBase64EncodeFunction(factory),
		lib.FnBase64URLDecode:     lib.Base64URLDecodeFunc,
		lib.FnBase64URLDecodeJSON: lib.Base64URLDecodeJSONFunc,
		lib.FnBase64URLEncode:     lib.Base64URLEncodeFunc,
		lib.FnBase64URLEncodeJSON: lib.Base64URLEncodeJSONFunc,
		lib.FnTranscode:           lib.NewTranscodeFunction(factory),
	}
}

func decodeEnvironmentRefs(expr hcl.Expression) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, traversal := range expr.Variables() {
		if traversal.RootName() != Environment || len(traversal) < 2 {
			continue
		}

		var key string
		switch step := traversal[1].(type) {
		case hcl.TraverseAttr:
			key = step.Name
		case hcl.TraverseIndex:
			if step.Key.Type() != cty.String {
				continue
			}
			key = step.Key.AsString()
		default:
			continue
		}

		if _, exist := seen[key]; !exist {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
