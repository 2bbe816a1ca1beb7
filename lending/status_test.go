package lending_test

import (
	"encoding/json"
	"testing"

	"github.com/marcelsud/library-api/lending"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "canceled", "completed"} {
		status := lending.NewReservationStatus(s)
		require.NoError(t, status.Validate())
		assert.Equal(t, s, status.String())
	}

	assert.True(t, lending.Pending.IsActive())
	assert.True(t, lending.Approved.IsActive())
	assert.False(t, lending.Canceled.IsActive())
	assert.False(t, lending.Completed.IsActive())
	assert.Error(t, lending.NewReservationStatus("expired").Validate())
}

func TestBorrowStatus_Scan(t *testing.T) {
	var s lending.BorrowStatus
	require.NoError(t, s.Scan([]byte("returned")))
	assert.Equal(t, lending.Returned, s)

	assert.Error(t, s.Scan("lost"))
	assert.Error(t, s.Scan(42))

	b, err := json.Marshal(lending.Borrowed)
	require.NoError(t, err)
	assert.JSONEq(t, `"borrowed"`, string(b))
}
