package options

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sllist/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSplitListFlag(t *testing.T) {
	tests := []struct {
		name string
		flag string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "a", []string{"a"}},
		{"several", "a,b,c", []string{"a", "b", "c"}},
		{"spaces trimmed", " a , b ", []string{"a", "b"}},
		{"blank tokens dropped", "a,,b,", []string{"a", "b"}},
		{"only commas", ",,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitListFlag(tt.flag))
		})
	}
}

func statusCode(t *testing.T, err error) int {
	var withCode *util.ErrorWithCode
	require.True(t, errors.As(err, &withCode), "expected an error with code, got %v", err)
	return withCode.StatusCode
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "values.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("a\nb\n"), 0644))

	tests := []struct {
		name     string
		opts     Options
		wantCode int
	}{
		{"inline values", Options{InlineValues: []string{"1"}, Workers: 2}, 0},
		{"empty inline values", Options{InlineValues: []string{}}, 0},
		{"input file", Options{InputPaths: []string{inputPath}}, 0},
		{"no sources", Options{}, util.ERROR_NO_SOURCES},
		{"missing input", Options{InputPaths: []string{filepath.Join(dir, "missing")}}, util.ERROR_BAD_INPUT_PATH},
		{"directory input", Options{InputPaths: []string{dir}}, util.ERROR_BAD_INPUT_PATH},
		{"negative pop", Options{InlineValues: []string{"1"}, PopCount: -1}, util.ERROR_BAD_POP_COUNT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.Validate()
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, opts.Workers, 1)
				return
			}
			assert.Equal(t, tt.wantCode, statusCode(t, err))
		})
	}
}

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestParseOptions(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "values.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("x\n"), 0644))

	opts, err := ParseOptions(newContext(t,
		"--values", "1, 2,3",
		"--input", inputPath,
		"--exclude", "a*,b*",
		"--pop", "2",
		"--ignore-case",
		"--workers", "0",
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, opts.InlineValues)
	assert.Equal(t, []string{inputPath}, opts.InputPaths)
	assert.Equal(t, []string{}, opts.IncludePatterns)
	assert.Equal(t, []string{"a*", "b*"}, opts.ExcludePatterns)
	assert.Equal(t, 2, opts.PopCount)
	assert.True(t, opts.IgnoreCasePatterns)
	assert.Equal(t, 1, opts.Workers)
	assert.False(t, opts.VerboseLogging)
}

func TestParseOptionsWithoutValuesFlag(t *testing.T) {
	_, err := ParseOptions(newContext(t, "--pop", "1"))
	assert.Equal(t, util.ERROR_NO_SOURCES, statusCode(t, err))
}
