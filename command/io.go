package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/docker/go-units"

	"github.com/coupergateway/base64url/errors"
)

// readInput returns the joined positional arguments, the content of file
// or the content of stdin, in this order. A file named "-" is stdin.
func readInput(positional Args, file string, stdin io.Reader, limit int64) ([]byte, error) {
	if file != "" && len(positional) > 0 {
		return nil, errors.Command.Message("either -in or text arguments can be given")
	}

	var r io.Reader
	switch {
	case len(positional) > 0:
		r = strings.NewReader(strings.Join(positional, " "))
	case file != "" && file != "-":
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Command.Label("in").With(err)
		}
		defer f.Close()
		r = f
	case stdin != nil:
		r = stdin
	default:
		return []byte{}, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Command.Message("reading input failed").With(err)
	}
	if int64(len(data)) > limit {
		return nil, errors.Command.Message(fmt.Sprintf("input exceeds %s", units.BytesSize(float64(limit))))
	}
	return data, nil
}

func writeOutput(out io.Writer, s string, newline bool) error {
	if newline {
		s += "\n"
	}
	if _, err := io.WriteString(out, s); err != nil {
		return errors.Command.Message("writing output failed").With(err)
	}
	return nil
}

func sizeFields(in, out int) map[string]interface{} {
	return map[string]interface{}{
		"input_size":  units.HumanSize(float64(in)),
		"output_size": units.HumanSize(float64(out)),
	}
}
