package command

import (
	"fmt"
	"io"
)

// Help shows available commands and options.
func Help(out io.Writer) {
	fmt.Fprint(out, `base64url usage:

base64url <cmd> <options>

global options:

	-log-format	format option for json or common logs
	-log-level	panic, fatal, error, warn, info, debug or trace
	-log-pretty	pretty print json logs

available commands:

`)
	for _, name := range Names {
		fmt.Fprintln(out, NewCommand(name, IO{}, nil).Usage())
		fmt.Fprintln(out)
	}
}
