package util

import (
	"bytes"
	"encoding/json"
	"io"
)

// UnmarshallJsonBody reads an HTTP response body buffer into a value of type U
func UnmarshallJsonBody[U any](responseBody *bytes.Buffer) (U, error) {
	var unmarshalled U

	data, err := io.ReadAll(responseBody)

	if err != nil {
		return unmarshalled, err
	}

	err = json.Unmarshal(data, &unmarshalled)

	return unmarshalled, err
}
