package command

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/base64url"
	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/config"
	"github.com/coupergateway/base64url/errors"
)

var _ Cmd = &Encode{}

// Encode writes the base64url representation of its input.
type Encode struct {
	factory buffer.Factory
	flagSet *flag.FlagSet
	streams IO

	file          string
	inputEncoding string
	json          bool
	noNewline     bool
}

func NewEncode(streams IO, factory buffer.Factory) *Encode {
	e := &Encode{factory: factory, streams: streams}
	set := flag.NewFlagSet("encode", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.StringVar(&e.file, "in", "", "-in ./file.bin")
	set.StringVar(&e.inputEncoding, "input-encoding", "", "-input-encoding hex")
	set.BoolVar(&e.json, "json", false, "-json")
	set.BoolVar(&e.noNewline, "n", false, "-n")
	e.flagSet = set
	return e
}

func (e *Encode) Execute(args Args, settings *config.Settings, logEntry *logrus.Entry) error {
	if err := e.flagSet.Parse(args.Filter(e.flagSet)); err != nil {
		return errors.Command.Label("encode").With(err)
	}

	limit, err := settings.InputLimit()
	if err != nil {
		return err
	}

	input, err := readInput(args.Positional(e.flagSet), e.file, e.streams.In, limit)
	if err != nil {
		return err
	}

	var encoded string
	switch {
	case e.json:
		encoded, err = encodeJSONInput(input)
	case e.inputEncoding != "":
		var buf buffer.Buffer
		buf, err = e.factory.From(string(input), e.inputEncoding)
		if err == nil {
			encoded, err = buf.ToString(buffer.Base64URL)
		}
	default:
		encoded = base64url.Encode(input)
	}
	if err != nil {
		return err
	}

	logEntry.WithFields(sizeFields(len(input), len(encoded))).Debug("encoded")
	return writeOutput(e.streams.Out, encoded, !(settings.NoNewline || e.noNewline))
}

// encodeJSONInput parses a single JSON value and encodes its compact form.
// Numbers are kept as written.
func encodeJSONInput(input []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", errors.Parse.With(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", errors.Parse.Message("unexpected data after the JSON value")
	}
	return base64url.EncodeJSON(v)
}

func (e *Encode) Usage() string {
	return `Usage of encode:
  encode [-json] [-input-encoding name] [-n] [-in file] [text...]
	Encodes the text arguments, the file content or stdin.
	-json			re-serialize the JSON input in its compact form
	-input-encoding		interpret the input as utf8, hex, base64, latin1 or ascii text
	-n			do not print the trailing newline
	-in			input file, "-" reads stdin`
}
