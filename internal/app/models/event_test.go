package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	t.Run("no reviews yields nil, not zero", func(t *testing.T) {
		assert.Nil(t, AverageRating(0, 0))
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		cases := []struct {
			sum, count int64
			want       float64
		}{
			{sum: 9, count: 2, want: 4.5},
			{sum: 10, count: 3, want: 3.3},
			{sum: 11, count: 3, want: 3.7},
			{sum: 5, count: 1, want: 5},
			{sum: 7, count: 2, want: 3.5},
		}
		for _, c := range cases {
			got := AverageRating(c.sum, c.count)
			require.NotNil(t, got)
			assert.Equal(t, c.want, *got, "sum=%d count=%d", c.sum, c.count)
		}
	})
}

func TestEventOwner(t *testing.T) {
	e := &Event{ID: 3, OrganizerID: 11}
	assert.Equal(t, int64(11), e.OwnerID())
}

func TestRSVPStatusValid(t *testing.T) {
	assert.True(t, RSVPGoing.Valid())
	assert.True(t, RSVPMaybe.Valid())
	assert.True(t, RSVPNotGoing.Valid())

	assert.False(t, RSVPStatus("").Valid())
	assert.False(t, RSVPStatus("going").Valid())
	assert.False(t, RSVPStatus("Attending").Valid())
}
