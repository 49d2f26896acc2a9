// Package source loads the value sequences that lists are built from.
package source

import (
	"fmt"
	"os"
	"sllist/options"
	"sllist/util"
	"strings"

	"github.com/avast/retry-go"
	"github.com/samber/lo"
	"golang.org/x/net/html/charset"
)

const (
	INLINE_NAME     = "values"
	READ_ATTEMPTS   = 3
	WINDOWS_NEWLINE = "\r\n"
	BYTE_ORDER_MARK = "\uFEFF"
)

// Source is one ordered sequence of values, named after where it came from.
type Source struct {
	Name   string
	Values []string
}

// Pending is a source that has not been read yet.
type Pending struct {
	Name string
	Load func() (*Source, error)
}

// FromOptions lists the sources given on the command line: inline values
// first, then input files in flag order.
func FromOptions(opts *options.Options) []Pending {
	pending := []Pending{}
	if opts.HasInlineValues() {
		values := opts.InlineValues
		pending = append(pending, Pending{
			Name: INLINE_NAME,
			Load: func() (*Source, error) {
				return &Source{Name: INLINE_NAME, Values: values}, nil
			},
		})
	}
	for _, inputPath := range opts.InputPaths {
		filePath := inputPath
		pending = append(pending, Pending{
			Name: filePath,
			Load: func() (*Source, error) {
				return ReadFile(filePath)
			},
		})
	}
	return pending
}

// ReadFile loads one value per non-blank line, decoding the file to UTF-8
// first when it is in another encoding.
func ReadFile(filePath string) (*Source, error) {
	var contents []byte
	err := retry.Do(
		func() error {
			var readErr error
			contents, readErr = os.ReadFile(filePath)
			return readErr
		},
		retry.Attempts(READ_ATTEMPTS),
		retry.RetryIf(func(err error) bool {
			return !os.IsNotExist(err) && !os.IsPermission(err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_PATH,
			InternalError: fmt.Errorf("failed to read input '%v': %w", filePath, err),
		}
	}

	text, err := decode(contents)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_ENCODING,
			InternalError: fmt.Errorf("failed to decode input '%v': %w", filePath, err),
		}
	}

	return &Source{Name: filePath, Values: SplitLines(text)}, nil
}

func decode(contents []byte) (string, error) {
	encoding, _, _ := charset.DetermineEncoding(contents, "text/plain")
	decoded, err := encoding.NewDecoder().Bytes(contents)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(decoded), BYTE_ORDER_MARK), nil
}

func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, WINDOWS_NEWLINE, "\n")
	lines := lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Compact(lines)
}
