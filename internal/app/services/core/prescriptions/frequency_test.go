package prescriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTimes(t *testing.T) {
	t.Run("Known frequencies map to their fixed schedule", func(t *testing.T) {
		assert.Equal(t, []string{"09:00"}, LookupTimes("Once Daily"))
		assert.Equal(t, []string{"09:00", "21:00"}, LookupTimes("Twice Daily"))
		assert.Equal(t, []string{"09:00", "14:00", "21:00"}, LookupTimes("Three Times Daily"))
		assert.Equal(t, []string{"06:00", "12:00", "18:00", "22:00"}, LookupTimes("Four Times Daily"))
		assert.Equal(t, []string{"08:00"}, LookupTimes("Every Morning"))
		assert.Equal(t, []string{"21:00"}, LookupTimes("Every Night"))
		assert.Equal(t, []string{"07:30", "12:30", "19:30"}, LookupTimes("Before Meals"))
	})

	t.Run("As Needed has no scheduled slots", func(t *testing.T) {
		times := LookupTimes("As Needed")

		assert.NotNil(t, times)
		assert.Empty(t, times)
	})

	t.Run("Unknown frequency falls back to the default slot", func(t *testing.T) {
		assert.Equal(t, []string{"09:00"}, LookupTimes("Whenever"))
		assert.Equal(t, []string{"09:00"}, LookupTimes(""))
	})

	t.Run("Returned slice is a copy", func(t *testing.T) {
		first := LookupTimes("Twice Daily")
		first[0] = "00:00"

		assert.Equal(t, []string{"09:00", "21:00"}, LookupTimes("Twice Daily"))
	})
}
