package booking

import "math/rand/v2"

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	confirmationNumberLength = 8
	ticketIDLength           = 6

	// maxIDAttempts bounds the collision-retry loop. Short random ids can
	// collide, so the generator retries, but it must not be able to spin
	// forever if the id space fills up.
	maxIDAttempts = 16
)

// randomID returns a random lowercase alphanumeric identifier.
func randomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// BookFlight creates an itinerary for the user on the given flight and
// returns the confirmation number together with the stored record.
//
// The flight and user are accepted as given: resolving them against the
// store is the caller's job (the agent looks both up before booking). The
// confirmation number is drawn repeatedly until it is unused, up to
// maxIDAttempts, after which ErrIDSpaceExhausted is returned.
func (s *Store) BookFlight(flight Flight, user UserProfile) (string, Itinerary, error) {
	s.itineraryMu.Lock()
	defer s.itineraryMu.Unlock()

	confirmationNumber, err := s.uniqueID(confirmationNumberLength, func(id string) bool {
		_, taken := s.itineraries[id]
		return taken
	})
	if err != nil {
		return "", Itinerary{}, err
	}

	itinerary := Itinerary{
		ConfirmationNumber: confirmationNumber,
		UserProfile:        user,
		Flight:             flight,
	}
	s.itineraries[confirmationNumber] = itinerary
	return confirmationNumber, itinerary, nil
}

// FetchItinerary looks up a booked itinerary. Absence is information, not
// an error: callers use it to check whether a booking exists.
func (s *Store) FetchItinerary(confirmationNumber string) (Itinerary, bool) {
	s.itineraryMu.Lock()
	defer s.itineraryMu.Unlock()
	itinerary, ok := s.itineraries[confirmationNumber]
	return itinerary, ok
}

// CancelItinerary removes the itinerary with the given confirmation number.
// Unknown numbers (including already-cancelled ones) return
// ErrItineraryNotFound.
//
// The user is accepted for parity with the reference system but is not
// checked against the itinerary's owner; see DESIGN.md on this
// authorization gap.
func (s *Store) CancelItinerary(confirmationNumber string, user UserProfile) error {
	s.itineraryMu.Lock()
	defer s.itineraryMu.Unlock()
	if _, ok := s.itineraries[confirmationNumber]; !ok {
		return ErrItineraryNotFound
	}
	delete(s.itineraries, confirmationNumber)
	return nil
}

// uniqueID draws ids until taken reports an unused one. The caller must
// hold the lock guarding the table taken consults.
func (s *Store) uniqueID(length int, taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID(length)
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}
