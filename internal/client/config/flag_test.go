package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "remote", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "10", "-i", "5"}, expectPanic: false,
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", RequestTimeout: 10 * time.Second, OnlineCheckInterval: 5 * time.Second}},
		{name: "local store", args: []string{"cmd", "-D", "/data", "-S", "postgres", "-d", "postgres://x", "-o", "/r", "-v", "debug"}, expectPanic: false,
			expected: &Config{DataDir: "/data", Storage: "postgres", DatabaseDSN: "postgres://x", ReportDir: "/r", LogLevel: "debug"}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cli.json", "-t", "3"}, expectPanic: false,
			expected: &Config{RequestTimeout: 3 * time.Second}},
		{name: "incorrect timeout", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
