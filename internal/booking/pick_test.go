package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickFlight_ShortestDurationWins(t *testing.T) {
	short := Flight{FlightID: "S1", Duration: 2.5, Price: 500}
	long := Flight{FlightID: "L1", Duration: 5.0, Price: 100}

	picked, err := PickFlight([]Flight{long, short})
	require.NoError(t, err)
	assert.Equal(t, "S1", picked.FlightID)
}

func TestPickFlight_PriceBreaksDurationTie(t *testing.T) {
	// The seeded SFO→JFK pair: same duration, DA123 is cheaper.
	da123 := Flight{FlightID: "DA123", Duration: 5.5, Price: 320}
	da125 := Flight{FlightID: "DA125", Duration: 5.5, Price: 450}

	picked, err := PickFlight([]Flight{da123, da125})
	require.NoError(t, err)
	assert.Equal(t, "DA123", picked.FlightID)

	// Same result regardless of input order.
	picked, err = PickFlight([]Flight{da125, da123})
	require.NoError(t, err)
	assert.Equal(t, "DA123", picked.FlightID)
}

func TestPickFlight_TieBreakIsDeterministic(t *testing.T) {
	a := Flight{FlightID: "A", Duration: 1.5, Price: 180}
	b := Flight{FlightID: "B", Duration: 1.5, Price: 150}

	picked, err := PickFlight([]Flight{a, b})
	require.NoError(t, err)
	assert.Equal(t, "B", picked.FlightID)
}

func TestPickFlight_FullTieResolvesToFirstInInputOrder(t *testing.T) {
	first := Flight{FlightID: "F1", Duration: 3.0, Price: 200}
	second := Flight{FlightID: "F2", Duration: 3.0, Price: 200}

	picked, err := PickFlight([]Flight{first, second})
	require.NoError(t, err)
	assert.Equal(t, "F1", picked.FlightID)

	picked, err = PickFlight([]Flight{second, first})
	require.NoError(t, err)
	assert.Equal(t, "F2", picked.FlightID)
}

func TestPickFlight_EmptyInputIsInvalid(t *testing.T) {
	_, err := PickFlight(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = PickFlight([]Flight{})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestPickFlight_SeededScenario(t *testing.T) {
	store := NewStore()

	flights, err := store.MatchFlights(
		Date{Year: 2025, Month: 9, Day: 1, Hour: 0}, "SFO", "JFK")
	require.NoError(t, err)
	require.Len(t, flights, 3)

	picked, err := PickFlight(flights)
	require.NoError(t, err)
	assert.Equal(t, "DA123", picked.FlightID, "cheapest of the 5.5h pair")
}
