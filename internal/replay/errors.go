package replay

import "errors"

var (
	ErrEmptyInput  = errors.New("replay: empty input")
	ErrInvalidJSON = errors.New("replay: input is not valid JSON")
	ErrNotObject   = errors.New("replay: decoded replay must be a JSON object")
)
