package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	logrustest "github.com/sirupsen/logrus/hooks/test"

	"github.com/coupergateway/base64url/config/env"
)

func Test_realmain(t *testing.T) {
	localHook := &logrustest.Hook{}
	testHook = localHook
	defer func() { testHook = nil }()

	tests := []struct {
		name       string
		args       []string
		envs       []string
		stdin      string
		wantStdout string
		wantLog    string
		want       int
	}{
		{"encode", []string{"base64url", "encode", "Hello, World!"}, nil, "", "SGVsbG8sIFdvcmxkIQ\n", "", 0},
		{"encode global flag", []string{"base64url", "encode", "-log-level", "debug", "-n", "x"}, nil, "", "eA", "level=debug msg=encoded", 0},
		{"encode env no newline", []string{"base64url", "encode", "x"}, []string{"BASE64URL_NO_NEWLINE=true"}, "", "eA", "", 0},
		{"decode json", []string{"base64url", "decode", "-json"}, nil, "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9\n", "{\n  \"alg\": \"HS256\",\n  \"typ\": \"JWT\"\n}\n", "", 0},
		{"decode via shim", []string{"base64url", "decode", "-output-encoding", "base64url", "A-z_4ME"}, nil, "", "A-z_4ME\n", "", 0},
		{"decode dash leading", []string{"base64url", "decode", "-output-encoding", "hex", "-_8"}, nil, "", "fbff\n", "", 0},
		{"decode dash leading terminated", []string{"base64url", "decode", "-output-encoding", "hex", "--", "-_8"}, nil, "", "fbff\n", "", 0},
		{"encode dash leading", []string{"base64url", "encode", "-n", "-x"}, nil, "", "LXg", "", 0},
		{"encode dash leading terminated", []string{"base64url", "encode", "-n", "--", "-x"}, nil, "", "LXg", "", 0},
		{"decode error", []string{"base64url", "decode", "a+b"}, nil, "", "", `level=error msg="invalid character '+': illegal base64 data at input byte 1"`, 1},
		{"decode error json log", []string{"base64url", "decode", "-log-format", "json", "X"}, nil, "", "", `"error_type":"invalid_length"`, 1},
		{"json log format via env", []string{"base64url", "decode", "X"}, []string{"BASE64URL_LOG_FORMAT=json"}, "", "", `"type":"base64url"`, 1},
		{"invalid env", []string{"base64url", "encode", "x"}, []string{"BASE64URL_NO_NEWLINE=maybe"}, "", "", `invalid boolean value for \"BASE64URL_NO_NEWLINE\": maybe`, 1},
		{"invalid flag", []string{"base64url", "encode", "-log-level"}, nil, "", "", "flag needs an argument: -log-level", 1},
		{"unknown command", []string{"base64url", "run"}, nil, "", "", "", 1},
		{"missing command", []string{"base64url"}, nil, "", "", "", 1},
		{"help", []string{"base64url", "help"}, nil, "", "base64url usage:", "", 0},
		{"version", []string{"base64url", "version"}, nil, "", "go version", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(subT *testing.T) {
			localHook.Reset()
			if len(tt.envs) > 0 {
				env.SetTestOsEnviron(func() []string {
					return tt.envs
				})
			}
			defer env.SetTestOsEnviron(os.Environ)

			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			if got := realmain(tt.args, strings.NewReader(tt.stdin), stdout, stderr); got != tt.want {
				subT.Errorf("realmain() = %v, want %v\n%s", got, tt.want, stderr.String())
			}

			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				subT.Errorf("\nwant stdout:\t%q\ngot:\t%q\n", tt.wantStdout, stdout.String())
			}

			if tt.wantLog != "" && !strings.Contains(stderr.String(), tt.wantLog) {
				subT.Errorf("\nwant:\t%s\ngot:\t%s\n", tt.wantLog, stderr.String())
			}
		})
	}
}
