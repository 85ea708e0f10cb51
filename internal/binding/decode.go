package binding

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeRequest parses a JSON request body. Unknown fields are rejected.
func DecodeRequest(body []byte) (Request, error) {
	var req Request

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return req, nil
}

// errorBody is the JSON shape of a failed call.
type errorBody struct {
	Error string `json:"error"`
}
