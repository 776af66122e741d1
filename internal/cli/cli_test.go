package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/edmacinfo/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default file",
			args: []string{"prog"},
			want: options.Program{Input: "ROM1.bin", Layout: "r180"},
		},
		{
			name: "positional file",
			args: []string{"prog", "dump.bin"},
			want: options.Program{Input: "dump.bin", Layout: "r180"},
		},
		{
			name: "all flags",
			args: []string{"prog", "-o", "out.txt", "-layout", "R180", "-debug", "-q", "dump.bin"},
			want: options.Program{Input: "dump.bin", Output: "out.txt", Layout: "R180", Debug: true, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsUsageErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		help     bool
		contains string
	}{
		{
			name: "help",
			args: []string{"prog", "-h"},
			help: true,
		},
		{
			name:     "unknown flag",
			args:     []string{"prog", "-x", "dump.bin"},
			contains: "not defined",
		},
		{
			name:     "flag after file",
			args:     []string{"prog", "dump.bin", "-q"},
			contains: "after file to decode",
		},
		{
			name:     "two files",
			args:     []string{"prog", "a.bin", "b.bin"},
			contains: "only one file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.Equal(t, tt.help, usageErr.Help())
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}
