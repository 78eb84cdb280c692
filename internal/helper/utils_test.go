package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID(t *testing.T) {
	id, err := GenerateUUID()
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	other, err := GenerateUUID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPrettyJSON(t *testing.T) {
	s, err := prettyJSON(map[string]int{"count": 5})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 5\n}", s)
}

func TestPrettyJSONUnmarshalableValue(t *testing.T) {
	s, err := prettyJSON(make(chan int))
	assert.Error(t, err)
	assert.Empty(t, s)
}
