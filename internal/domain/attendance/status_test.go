package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"P", "A", "L", "SL", "LOP", "H"} {
		s, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(s))
	}

	_, err := ParseStatus("X")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("p")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatusCycleOrder(t *testing.T) {
	assert.Equal(t, StatusAbsent, StatusPresent.Cycle())
	assert.Equal(t, StatusLossOfPay, StatusAbsent.Cycle())
	assert.Equal(t, StatusSickLeave, StatusLossOfPay.Cycle())
	assert.Equal(t, StatusPresent, StatusSickLeave.Cycle())
}

func TestStatusCycleClosure(t *testing.T) {
	// Four steps from any cyclable status land back on the start.
	for _, start := range []Status{StatusPresent, StatusAbsent, StatusLossOfPay, StatusSickLeave} {
		s := start
		for i := 0; i < 4; i++ {
			s = s.Cycle()
			assert.True(t, s.Cyclable())
		}
		assert.Equal(t, start, s)
	}
}

func TestStatusCycleNonCyclable(t *testing.T) {
	assert.Equal(t, StatusHoliday, StatusHoliday.Cycle())
	assert.Equal(t, StatusLeave, StatusLeave.Cycle())
	assert.False(t, StatusHoliday.Cyclable())
	assert.False(t, StatusLeave.Cyclable())
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Present", StatusPresent.Label())
	assert.Equal(t, "Loss of Pay", StatusLossOfPay.Label())
	assert.Equal(t, "Holiday", StatusHoliday.Label())
}
