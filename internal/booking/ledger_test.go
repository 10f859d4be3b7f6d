package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() UserProfile {
	return UserProfile{UserID: "1", Name: "Adam", Email: "adam@gmail.com"}
}

func testFlight() Flight {
	return Flight{
		FlightID:    "DA123",
		DateTime:    Date{Year: 2025, Month: 9, Day: 1, Hour: 1},
		Origin:      "SFO",
		Destination: "JFK",
		Duration:    5.5,
		Price:       320,
	}
}

func TestBookFlight_RoundTrip(t *testing.T) {
	store := NewStore()

	confirmationNumber, itinerary, err := store.BookFlight(testFlight(), testUser())
	require.NoError(t, err)
	require.Len(t, confirmationNumber, confirmationNumberLength)

	assert.Equal(t, confirmationNumber, itinerary.ConfirmationNumber)
	assert.Equal(t, testUser(), itinerary.UserProfile)
	assert.Equal(t, testFlight(), itinerary.Flight)

	fetched, ok := store.FetchItinerary(confirmationNumber)
	require.True(t, ok)
	assert.Equal(t, itinerary, fetched)
}

func TestBookFlight_ConfirmationNumbersAreDistinct(t *testing.T) {
	store := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		confirmationNumber, _, err := store.BookFlight(testFlight(), testUser())
		require.NoError(t, err)
		assert.False(t, seen[confirmationNumber],
			"confirmation number %q issued twice", confirmationNumber)
		seen[confirmationNumber] = true
	}
}

func TestBookFlight_RetriesOnCollision(t *testing.T) {
	store := NewStore()

	// First booking under a rigged generator that always returns the
	// same id.
	store.newID = func(length int) string { return "collided" }
	confirmationNumber, _, err := store.BookFlight(testFlight(), testUser())
	require.NoError(t, err)
	require.Equal(t, "collided", confirmationNumber)

	// Now force the first draw to collide and verify the retry produces
	// a fresh id.
	draws := 0
	store.newID = func(length int) string {
		draws++
		if draws == 1 {
			return "collided"
		}
		return fmt.Sprintf("fresh-%02d", draws)
	}

	confirmationNumber, _, err = store.BookFlight(testFlight(), testUser())
	require.NoError(t, err)
	assert.Equal(t, "fresh-02", confirmationNumber)
	assert.Equal(t, 2, draws)
}

func TestBookFlight_BoundedRetry(t *testing.T) {
	store := NewStore()

	store.newID = func(length int) string { return "stuck" }
	_, _, err := store.BookFlight(testFlight(), testUser())
	require.NoError(t, err)

	// Every subsequent draw collides; the loop must give up instead of
	// spinning forever.
	_, _, err = store.BookFlight(testFlight(), testUser())
	assert.ErrorIs(t, err, ErrIDSpaceExhausted)
}

func TestCancelItinerary(t *testing.T) {
	store := NewStore()

	confirmationNumber, _, err := store.BookFlight(testFlight(), testUser())
	require.NoError(t, err)

	require.NoError(t, store.CancelItinerary(confirmationNumber, testUser()))

	_, ok := store.FetchItinerary(confirmationNumber)
	assert.False(t, ok, "cancelled itinerary still present")

	// Cancelling again, or cancelling a never-issued number, is NotFound.
	assert.ErrorIs(t, store.CancelItinerary(confirmationNumber, testUser()),
		ErrItineraryNotFound)
	assert.ErrorIs(t, store.CancelItinerary("neverwas1", testUser()),
		ErrItineraryNotFound)
}

func TestFetchItinerary_AbsenceIsNotAnError(t *testing.T) {
	store := NewStore()

	itinerary, ok := store.FetchItinerary("unknown99")
	assert.False(t, ok)
	assert.Zero(t, itinerary)
}
