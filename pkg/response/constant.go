package response

import "time"

const (
	DefaultErrorMessage = "something went wrong"

	InternalServerErrorCode = 500

	DateTimeFormat = time.RFC3339Nano
)
