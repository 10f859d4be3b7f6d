package booking

import "sort"

// DestinationsFrom returns the distinct destinations reachable from origin,
// sorted lexicographically. An unknown origin yields an empty slice.
func (s *Store) DestinationsFrom(origin string) []string {
	seen := make(map[string]bool)
	s.eachFlight(func(f Flight) {
		if f.Origin == origin {
			seen[f.Destination] = true
		}
	})
	return sortedKeys(seen)
}

// AllDestinations returns every distinct destination in the store, sorted
// lexicographically.
func (s *Store) AllDestinations() []string {
	seen := make(map[string]bool)
	s.eachFlight(func(f Flight) {
		seen[f.Destination] = true
	})
	return sortedKeys(seen)
}

// SearchRoutes lists every flight departing origin, optionally filtered by
// destination (empty string means no filter). Results are in seed order;
// callers must not rely on any price or time ordering. An empty listing is
// a valid answer, not an error.
func (s *Store) SearchRoutes(origin, destination string) []RouteSummary {
	routes := make([]RouteSummary, 0)
	s.eachFlight(func(f Flight) {
		if f.Origin != origin {
			return
		}
		if destination != "" && f.Destination != destination {
			return
		}
		summary := RouteSummary{
			FlightID:    f.FlightID,
			Origin:      f.Origin,
			Destination: f.Destination,
			Duration:    f.Duration,
			Price:       f.Price,
			SampleHour:  f.DateTime.Hour,
			Recurring:   f.Recurring != nil,
		}
		if f.Recurring != nil {
			summary.Frequency = f.Recurring.Frequency
			summary.ExcludedDays = f.Recurring.ExcludedDays
		}
		routes = append(routes, summary)
	})
	return routes
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
