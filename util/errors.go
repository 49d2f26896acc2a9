package util

const (
	ERROR_BAD_INPUT_PATH     = 201
	ERROR_BAD_INPUT_ENCODING = 202
	ERROR_BAD_PATTERN        = 203
	ERROR_EMPTY_LIST         = 204
	ERROR_BAD_POP_COUNT      = 205
	ERROR_NO_SOURCES         = 206
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}
