package command

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/config"
)

type Cmd interface {
	Execute(args Args, settings *config.Settings, logger *logrus.Entry) error
	Usage() string
}

// IO holds the streams of a command.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// Names lists the available commands in help order.
var Names = []string{"encode", "decode", "eval", "version"}

func NewCommand(cmd string, streams IO, factory buffer.Factory) Cmd {
	switch strings.ToLower(cmd) {
	case "encode":
		return NewEncode(streams, factory)
	case "decode":
		return NewDecode(streams, factory)
	case "eval":
		return NewEval(streams, factory)
	case "version":
		return NewVersion(streams)
	default:
		return nil
	}
}
