package booking

import "errors"

var (
	// ErrNoMatchingFlight is returned by MatchFlights when no flight serves
	// the requested route on the requested date. Unlike SearchRoutes, which
	// returns empty listings freely, an empty match is a caller-visible
	// error.
	ErrNoMatchingFlight = errors.New("no matching flight found")

	// ErrItineraryNotFound is returned by CancelItinerary for an unknown or
	// already-cancelled confirmation number.
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrNoCandidates is returned by PickFlight when called with no
	// candidate flights. MatchFlights never hands an empty set onward, so
	// hitting this means the caller skipped the match step.
	ErrNoCandidates = errors.New("no candidate flights to pick from")

	// ErrIDSpaceExhausted is returned when the identifier generator fails
	// to produce an unused id within its attempt budget.
	ErrIDSpaceExhausted = errors.New("could not generate a unique identifier")
)
