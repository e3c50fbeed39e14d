package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	event, err := Decode(`{"tables":15,"ts":1760486400}`)
	require.NoError(t, err)
	assert.Equal(t, 15, event.Tables)
	assert.Equal(t, int64(1760486400), event.Timestamp)

	_, err = Decode("not json")
	assert.Error(t, err)
}
