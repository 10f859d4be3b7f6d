package booking

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures is the seed data a Store is initialized with. Flights retain
// their listed order; all route listings walk flights in seed order.
type Fixtures struct {
	Users   []UserProfile `yaml:"users"`
	Flights []Flight      `yaml:"flights"`
}

// Store holds the airline's records. Users and flights are seeded once and
// read-only afterwards; itineraries and tickets are mutable and each guarded
// by its own mutex, held across the full check-and-insert sequence.
//
// Construct stores with NewStore or NewStoreFrom and pass them by handle to
// whatever needs them. There is deliberately no package-level instance.
type Store struct {
	users       map[string]UserProfile
	flights     map[string]Flight
	flightOrder []string

	itineraryMu sync.Mutex
	itineraries map[string]Itinerary

	ticketMu sync.Mutex
	tickets  map[string]Ticket

	// newID generates candidate identifiers of the given length.
	// Overridable so tests can force collisions.
	newID func(length int) string
}

// NewStore creates a Store seeded with the embedded fixture records.
func NewStore() *Store {
	var fix Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fix); err != nil {
		panic(fmt.Sprintf("booking: embedded fixtures are invalid: %v", err))
	}
	return NewStoreFrom(fix)
}

// NewStoreFrom creates a Store seeded with the given fixtures. Intended for
// tests that need a controlled record set.
func NewStoreFrom(fix Fixtures) *Store {
	s := &Store{
		users:       make(map[string]UserProfile, len(fix.Users)),
		flights:     make(map[string]Flight, len(fix.Flights)),
		flightOrder: make([]string, 0, len(fix.Flights)),
		itineraries: make(map[string]Itinerary),
		tickets:     make(map[string]Ticket),
		newID:       randomID,
	}
	for _, u := range fix.Users {
		s.users[u.Name] = u
	}
	for _, f := range fix.Flights {
		if _, dup := s.flights[f.FlightID]; dup {
			panic(fmt.Sprintf("booking: duplicate flight id %q in fixtures", f.FlightID))
		}
		s.flights[f.FlightID] = f
		s.flightOrder = append(s.flightOrder, f.FlightID)
	}
	return s
}

// eachFlight visits every flight in seed order.
func (s *Store) eachFlight(visit func(Flight)) {
	for _, id := range s.flightOrder {
		visit(s.flights[id])
	}
}
