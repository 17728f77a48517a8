package errors

var (
	TypeMismatch    = &Error{synopsis: "type mismatch error", kinds: []string{"type_mismatch"}}
	Decode          = &Error{synopsis: "decode error", kinds: []string{"decode"}}
	TextDecode      = &Error{synopsis: "text decode error", kinds: []string{"text_decode"}}
	Serialization   = &Error{synopsis: "json serialization error", kinds: []string{"serialization"}}
	Parse           = &Error{synopsis: "json parse error", kinds: []string{"parse"}}
	UnknownEncoding = &Error{synopsis: "unknown encoding", kinds: []string{"unknown_encoding"}}
	OutOfRange      = &Error{synopsis: "out of range error", kinds: []string{"out_of_range"}}
	Evaluation      = &Error{synopsis: "expression evaluation error", kinds: []string{"evaluation"}}
	Command         = &Error{synopsis: "command error", kinds: []string{"command"}}
)

// typeDefinitions holds all error kinds by their name.
type typeDefinitions map[string]*Error

var Types = typeDefinitions{
	"type_mismatch":    TypeMismatch,
	"decode":           Decode,
	"text_decode":      TextDecode,
	"serialization":    Serialization,
	"parse":            Parse,
	"unknown_encoding": UnknownEncoding,
	"out_of_range":     OutOfRange,
	"evaluation":       Evaluation,
	"command":          Command,
}

// IsKnown tells the caller if there is a defined error type with the given name.
func (t typeDefinitions) IsKnown(errorType string) bool {
	_, known := t[errorType]
	return known
}
