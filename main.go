package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/buffer"
	"github.com/coupergateway/base64url/command"
	"github.com/coupergateway/base64url/config"
	"github.com/coupergateway/base64url/config/env"
	"github.com/coupergateway/base64url/errors"
	"github.com/coupergateway/base64url/logging"
	"github.com/coupergateway/base64url/logging/hooks"
)

var testHook logrus.Hook

func main() {
	os.Exit(realmain(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func realmain(arguments []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args := command.NewArgs(arguments)

	var cmd string
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "-help", "--help":
		command.Help(stdout)
		return 0
	case "":
		command.Help(stderr)
		return 1
	}

	settings := config.DefaultSettings
	set := flag.NewFlagSet("global", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.StringVar(&settings.LogFormat, "log-format", settings.LogFormat, "-log-format json")
	set.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "-log-level debug")
	set.BoolVar(&settings.LogPretty, "log-pretty", settings.LogPretty, "-log-pretty")

	flagErr := set.Parse(args.Filter(set))
	// environment variables override flags
	envErr := env.Decode(&settings)

	var extraHooks []logrus.Hook
	if testHook != nil {
		extraHooks = append(extraHooks, testHook)
	}
	logEntry := logging.New(stderr, &settings, extraHooks...).
		WithContext(hooks.WithUID(context.Background()))

	for _, err := range []error{flagErr, envErr} {
		if err != nil {
			logEntry.WithError(errors.Command.Label("settings").With(err)).Error()
			return 1
		}
	}

	c := command.NewCommand(cmd, command.IO{In: stdin, Out: stdout}, buffer.Global())
	if c == nil {
		color.New(color.FgRed).Fprintf(stderr, "unknown command: %s\n\n", cmd)
		command.Help(stderr)
		return 1
	}

	if err := c.Execute(args.Without(set), &settings, logEntry); err != nil {
		logEntry.WithError(err).Error()
		return 1
	}
	return 0
}
