package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	id := NewID(File)

	got, err := IDFromString(id.String())
	require.NoError(t, err)

	assert.Equal(t, id, got)
	assert.Equal(t, File, got.Kind())
}

func TestIDFromString_Invalid(t *testing.T) {
	_, err := IDFromString("nodash")
	assert.Error(t, err)

	_, err = IDFromString("widget-7b9d9f0c-1a8f-4f39-8a52-0d3b5c8f2c11")
	assert.Error(t, err)
}
