package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
)

func TestConflictlessAtKeyNarrowsDocument(t *testing.T) {
	doc := V.NewObject().Set("count", V.Number(5))
	cl := ot.WithDocument(doc)

	atCount := cl.AtKey("count")
	assert.True(t, atCount.Enabled)

	atMissing := cl.AtKey("nope")
	assert.True(t, atMissing.Enabled)
}

func TestConflictlessAtKeyOnNonObjectIsMissing(t *testing.T) {
	cl := ot.WithDocument(V.Number(5))
	atCount := cl.AtKey("count")
	assert.True(t, atCount.Enabled)
}

func TestOffIsDisabledByDefault(t *testing.T) {
	assert.False(t, ot.Off.Enabled)
}
