package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Json map[string]any

func TestJsonMarshal(t *testing.T) {
	resRight, err := Unmarshal[Json]([]byte("{\"a\": \"b\"}"))
	assert.NoError(t, err)
	assert.Equal(t, Json{"a": "b"}, resRight)

	_, err = Unmarshal[Json]([]byte("{\"a\""))
	assert.Error(t, err)

	data, err := Marshal(resRight)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
