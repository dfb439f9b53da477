package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshallJsonBody(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	buf := bytes.NewBufferString(`{"name":"Jane","email":"jane@mail.com","extra":"ignored"}`)

	unmarshalled, err := UnmarshallJsonBody[payload](buf)

	require.NoError(t, err)
	require.Equal(t, payload{Name: "Jane", Email: "jane@mail.com"}, unmarshalled)
}

func TestUnmarshallJsonBodyWithInvalidJson(t *testing.T) {
	buf := bytes.NewBufferString(`{"name":`)

	_, err := UnmarshallJsonBody[map[string]interface{}](buf)

	require.Error(t, err)
}
