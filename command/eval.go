package command

import (
	"flag"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/config"
	"github.com/coupergateway/base64url/errors"
	"github.com/coupergateway/base64url/eval"
)

var _ Cmd = &Eval{}

// Eval evaluates an hcl expression with the encoding functions.
type Eval struct {
	factory buffer.Factory
	flagSet *flag.FlagSet
	streams IO

	file      string
	noNewline bool
}

func NewEval(streams IO, factory buffer.Factory) *Eval {
	e := &Eval{factory: factory, streams: streams}
	set := flag.NewFlagSet("eval", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.StringVar(&e.file, "in", "", "-in ./expression.hcl")
	set.BoolVar(&e.noNewline, "n", false, "-n")
	e.flagSet = set
	return e
}

func (e *Eval) Execute(args Args, settings *config.Settings, logEntry *logrus.Entry) error {
	if err := e.flagSet.Parse(args.Filter(e.flagSet)); err != nil {
		return errors.Command.Label("eval").With(err)
	}

	limit, err := settings.InputLimit()
	if err != nil {
		return err
	}

	src, err := readInput(args.Positional(e.flagSet), e.file, e.streams.In, limit)
	if err != nil {
		return err
	}

	val, err := eval.Evaluate(e.factory, string(src))
	if err != nil {
		return err
	}

	result, err := eval.ValueToString(val)
	if err != nil {
		return err
	}

	logEntry.WithField("result_type", val.Type().FriendlyName()).Debug("evaluated")
	return writeOutput(e.streams.Out, result, !(settings.NoNewline || e.noNewline))
}

func (e *Eval) Usage() string {
	return `Usage of eval:
  eval [-n] [-in file] [expression...]
	Evaluates an hcl expression. Available functions: base64url_encode,
	base64url_decode, base64url_encode_json, base64url_decode_json,
	base64_encode, base64_decode, transcode, to_upper and to_lower.
	Environment variables are referenced with env.NAME.`
}
