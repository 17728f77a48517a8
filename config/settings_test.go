package config_test

import (
	"testing"

	"github.com/coupergateway/base64url/config"
)

func TestSettings_InputLimit(t *testing.T) {
	tests := []struct {
		size    string
		want    int64
		wantErr bool
	}{
		{"64MiB", 64 << 20, false},
		{"1kb", 1 << 10, false},
		{"512", 512, false},
		{"", 0, true},
		{"lots", 0, true},
		{"0", 0, true},
	}

	for _, tt := range tests {
		s := &config.Settings{MaxInputSize: tt.size}
		got, err := s.InputLimit()
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error %v", tt.size, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: want %d, got %d", tt.size, tt.want, got)
		}
	}
}
