package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	store := NewStore()

	user, ok := store.GetUser("Adam")
	require.True(t, ok)
	assert.Equal(t, UserProfile{UserID: "1", Name: "Adam", Email: "adam@gmail.com"}, user)

	// Exact and case-sensitive: no fuzzy matching.
	_, ok = store.GetUser("adam")
	assert.False(t, ok)
	_, ok = store.GetUser("Ada")
	assert.False(t, ok)
	_, ok = store.GetUser("Zelda")
	assert.False(t, ok)
}

func TestFileTicket(t *testing.T) {
	store := NewStore()
	user := testUser()

	ticketID, err := store.FileTicket("I want to bring my llama on board", user)
	require.NoError(t, err)
	assert.Len(t, ticketID, ticketIDLength)

	stored, ok := store.tickets[ticketID]
	require.True(t, ok)
	assert.Equal(t, "I want to bring my llama on board", stored.UserRequest)
	assert.Equal(t, user, stored.UserProfile)
}

func TestFileTicket_IDsAreDistinct(t *testing.T) {
	store := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ticketID, err := store.FileTicket("request", testUser())
		require.NoError(t, err)
		assert.False(t, seen[ticketID], "ticket id %q issued twice", ticketID)
		seen[ticketID] = true
	}
}

func TestFileTicket_BoundedRetry(t *testing.T) {
	store := NewStore()

	store.newID = func(length int) string { return "stuck1" }
	_, err := store.FileTicket("first", testUser())
	require.NoError(t, err)

	_, err = store.FileTicket("second", testUser())
	assert.ErrorIs(t, err, ErrIDSpaceExhausted)
}
