package datemath

import "errors"

// DateLayout is the normalized calendar date format.
const DateLayout = "2006-01-02"

var (
	ErrEmptyExpression   = errors.New("date expression is empty")
	ErrUnknownExpression = errors.New("unrecognized date expression")
)
