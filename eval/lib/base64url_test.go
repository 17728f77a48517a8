package lib_test

import (
	stderrors "errors"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/errors"
	"github.com/coupergateway/base64url/eval/lib"
)

func TestBase64URLFunctions(t *testing.T) {
	encoded, err := lib.Base64URLEncodeFunc.Call([]cty.Value{cty.StringVal(`{"alg":"none"}`)})
	if err != nil {
		t.Fatal(err)
	}
	if encoded.AsString() != "eyJhbGciOiJub25lIn0" {
		t.Errorf("unexpected encoding %q", encoded.AsString())
	}

	decoded, err := lib.Base64URLDecodeFunc.Call([]cty.Value{encoded})
	if err != nil {
		t.Fatal(err)
	}
	if decoded.AsString() != `{"alg":"none"}` {
		t.Errorf("unexpected decoding %q", decoded.AsString())
	}

	_, err = lib.Base64URLDecodeFunc.Call([]cty.Value{cty.StringVal("eyJ=")})
	if !stderrors.Is(err, errors.Decode) {
		t.Errorf("expected a decode error, got %v", err)
	}
}

func TestBase64URLJSONFunctions(t *testing.T) {
	claims := cty.ObjectVal(map[string]cty.Value{
		"sub":   cty.StringVal("12345"),
		"roles": cty.TupleVal([]cty.Value{cty.StringVal("admin"), cty.StringVal("dev")}),
		"admin": cty.True,
		"exp":   cty.NumberIntVal(1700000000),
		"none":  cty.NullVal(cty.String),
	})

	encoded, err := lib.Base64URLEncodeJSONFunc.Call([]cty.Value{claims})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"admin":true,"exp":1700000000,"none":null,"roles":["admin","dev"],"sub":"12345"}`
	decodedText, err := lib.Base64URLDecodeFunc.Call([]cty.Value{encoded})
	if err != nil {
		t.Fatal(err)
	}
	if decodedText.AsString() != want {
		t.Errorf("want %s, got %s", want, decodedText.AsString())
	}

	decoded, err := lib.Base64URLDecodeJSONFunc.Call([]cty.Value{encoded})
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Type().IsObjectType() {
		t.Fatalf("expected an object, got %s", decoded.Type().FriendlyName())
	}
	if sub := decoded.GetAttr("sub"); !sub.RawEquals(cty.StringVal("12345")) {
		t.Errorf("unexpected sub %#v", sub)
	}
	if roles := decoded.GetAttr("roles"); roles.LengthInt() != 2 {
		t.Errorf("unexpected roles %#v", roles)
	}

	unknown, err := lib.Base64URLEncodeJSONFunc.Call([]cty.Value{cty.UnknownVal(cty.String)})
	if err != nil {
		t.Fatal(err)
	}
	if unknown.IsKnown() {
		t.Error("expected an unknown result for an unknown argument")
	}

	_, err = lib.Base64URLDecodeJSONFunc.Call([]cty.Value{cty.StringVal("e30i")})
	if !stderrors.Is(err, errors.Parse) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestTranscodeFunction(t *testing.T) {
	fn := lib.NewTranscodeFunction(buffer.NewCompat(buffer.Native{}))

	tests := []struct {
		str, from, to, want string
	}{
		{"A-z_4ME", "base64url", "base64", "A+z/4ME="},
		{"A+z/4ME=", "base64", "base64url", "A-z_4ME"},
		{"031ecfffe0c1", "hex", "base64url", "Ax7P_-DB"},
		{"Hello", "utf8", "base64url", "SGVsbG8"},
	}

	for _, tt := range tests {
		got, err := fn.Call([]cty.Value{cty.StringVal(tt.str), cty.StringVal(tt.from), cty.StringVal(tt.to)})
		if err != nil {
			t.Fatal(err)
		}
		if got.AsString() != tt.want {
			t.Errorf("%s -> %s: want %q, got %q", tt.from, tt.to, tt.want, got.AsString())
		}
	}

	native := lib.NewTranscodeFunction(buffer.Native{})
	_, err := native.Call([]cty.Value{cty.StringVal("Hello"), cty.StringVal("utf8"), cty.StringVal("base64url")})
	if !stderrors.Is(err, errors.UnknownEncoding) {
		t.Errorf("expected the native host to lack base64url, got %v", err)
	}
}

func TestBase64Functions(t *testing.T) {
	compat := buffer.NewCompat(buffer.Native{})

	encoded, err := lib.NewBase64EncodeFunction(compat).Call([]cty.Value{cty.StringVal("xx")})
	if err != nil {
		t.Fatal(err)
	}
	if encoded.AsString() != "eHg=" {
		t.Errorf("unexpected encoding %q", encoded.AsString())
	}

	decoded, err := lib.NewBase64DecodeFunction(compat).Call([]cty.Value{encoded})
	if err != nil {
		t.Fatal(err)
	}
	if decoded.AsString() != "xx" {
		t.Errorf("unexpected decoding %q", decoded.AsString())
	}
}
