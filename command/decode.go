package command

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/base64url"
	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/config"
	"github.com/coupergateway/base64url/errors"
)

var _ Cmd = &Decode{}

// Decode writes the bytes represented by its base64url input.
type Decode struct {
	factory buffer.Factory
	flagSet *flag.FlagSet
	streams IO

	file           string
	json           bool
	lossy          bool
	noNewline      bool
	outputEncoding string
}

func NewDecode(streams IO, factory buffer.Factory) *Decode {
	d := &Decode{factory: factory, streams: streams}
	set := flag.NewFlagSet("decode", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.StringVar(&d.file, "in", "", "-in ./token.txt")
	set.BoolVar(&d.json, "json", false, "-json")
	set.BoolVar(&d.lossy, "lossy", false, "-lossy")
	set.BoolVar(&d.noNewline, "n", false, "-n")
	set.StringVar(&d.outputEncoding, "output-encoding", "", "-output-encoding hex")
	d.flagSet = set
	return d
}

func (d *Decode) Execute(args Args, settings *config.Settings, logEntry *logrus.Entry) error {
	if err := d.flagSet.Parse(args.Filter(d.flagSet)); err != nil {
		return errors.Command.Label("decode").With(err)
	}

	limit, err := settings.InputLimit()
	if err != nil {
		return err
	}

	input, err := readInput(args.Positional(d.flagSet), d.file, d.streams.In, limit)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(string(input))
	newline := !(settings.NoNewline || d.noNewline)

	var result string
	switch {
	case d.json:
		result, err = decodeJSONInput(text)
	case d.outputEncoding != "":
		var buf buffer.Buffer
		buf, err = d.factory.From(text, buffer.Base64URL)
		if err == nil {
			result, err = buf.ToString(d.outputEncoding)
		}
	case d.lossy || settings.Lossy:
		result, err = base64url.DecodeToStringLossy(text)
	default:
		var b []byte
		b, err = base64url.Decode(text)
		result = string(b)
		// raw bytes are written as they are
		newline = false
	}
	if err != nil {
		return err
	}

	logEntry.WithFields(sizeFields(len(text), len(result))).Debug("decoded")
	return writeOutput(d.streams.Out, result, newline)
}

func decodeJSONInput(text string) (string, error) {
	raw, err := base64url.DecodeJSON[json.RawMessage](text)
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	if err = json.Indent(buf, raw, "", "  "); err != nil {
		return "", errors.Parse.With(err)
	}
	return buf.String(), nil
}

func (d *Decode) Usage() string {
	return `Usage of decode:
  decode [-json] [-lossy] [-output-encoding name] [-n] [-in file] [text]
	Decodes the text argument, the file content or stdin. Surrounding
	whitespace is ignored, the raw bytes are written without a newline.
	-json			pretty print the decoded JSON value
	-lossy			write text and replace invalid UTF-8 with U+FFFD
	-output-encoding	render the bytes as utf8, hex, base64, latin1 or ascii text
	-n			do not print the trailing newline
	-in			input file, "-" reads stdin`
}
