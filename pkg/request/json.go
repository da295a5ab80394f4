package request

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotAnObject    = errors.New("request body must be a JSON object")
	ErrTrailingData   = errors.New("request body must only contain a single JSON object")
	ErrUnreadableJSON = errors.New("request body is not valid JSON")
)

// DecodeObject reads exactly one JSON object from the request body and
// returns its members undecoded.
func DecodeObject(c *gin.Context) (map[string]json.RawMessage, error) {
	if c.Request.Body == nil {
		return nil, ErrUnreadableJSON
	}

	var body map[string]json.RawMessage
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotAnObject
		}
		return nil, ErrUnreadableJSON
	}
	if body == nil {
		return nil, ErrNotAnObject
	}
	if err := ensureSingleJSON(dec); err != nil {
		return nil, err
	}
	return body, nil
}

func ensureSingleJSON(dec *json.Decoder) error {
	if t, err := dec.Token(); err != io.EOF || t != nil {
		return ErrTrailingData
	}
	return nil
}
