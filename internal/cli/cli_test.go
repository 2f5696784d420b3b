package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/tompreston/parse-dpcd/internal/options"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "no arguments reads stdin",
			args: []string{"prog"},
			want: options.Program{Inputs: []string{}},
		},
		{
			name: "dump files",
			args: []string{"prog", "dump1.txt", "dump2.txt"},
			want: options.Program{Inputs: []string{"dump1.txt", "dump2.txt"}},
		},
		{
			name: "expand fields flag",
			args: []string{"prog", "-f", "dump.txt"},
			want: options.Program{Inputs: []string{"dump.txt"}, ExpandFields: true},
		},
		{
			name: "strict flag",
			args: []string{"prog", "-strict"},
			want: options.Program{Inputs: []string{}, Strict: true},
		},
		{
			name: "output flag",
			args: []string{"prog", "-o", "out.txt", "dump.txt"},
			want: options.Program{Inputs: []string{"dump.txt"}, Output: "out.txt"},
		},
		{
			name: "debug and quiet flags",
			args: []string{"prog", "-debug", "-q"},
			want: options.Program{Inputs: []string{}, Debug: true, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Inputs, got.Inputs)
			assert.Equal(t, tt.want.Output, got.Output)
			assert.Equal(t, tt.want.ExpandFields, got.ExpandFields)
			assert.Equal(t, tt.want.Strict, got.Strict)
			assert.Equal(t, tt.want.Debug, got.Debug)
			assert.Equal(t, tt.want.Quiet, got.Quiet)
		})
	}
}

func TestParseFlagsOptionAfterFile(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "dump.txt", "-f"}

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs(nil))
	assert.NoError(t, validateArgs([]string{"dump.txt"}))
	assert.NoError(t, validateArgs([]string{"dump1.txt", "dump2.txt"}))
	assert.Error(t, validateArgs([]string{"dump.txt", "-f"}))
}
