package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestType struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func TestToType(t *testing.T) {
	generic := map[string]any{"a": "value", "b": 1}

	v1, err := ToType[TestType](generic)
	assert.NoError(t, err)
	assert.Equal(t, TestType{A: "value", B: 1}, v1)

	v2, err := ToType[*TestType](&generic)
	assert.NoError(t, err)
	assert.Equal(t, &TestType{A: "value", B: 1}, v2)
}
