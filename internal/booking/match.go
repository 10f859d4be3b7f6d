package booking

// MatchFlights resolves the concrete flights serving origin→destination on
// the given calendar date.
//
// A one-time flight matches when its anchor year/month/day equals the query
// date exactly. A recurring flight matches when the query date's weekday
// satisfies its schedule; the anchor date contributes only the hour-of-day
// and is otherwise not consulted.
//
// An empty result is reported as ErrNoMatchingFlight rather than returned
// silently: the agent needs a hard signal to tell the customer no flight
// exists, whereas route listings (SearchRoutes) stay total.
func (s *Store) MatchFlights(date Date, origin, destination string) ([]Flight, error) {
	var flights []Flight
	s.eachFlight(func(f Flight) {
		if f.Origin != origin || f.Destination != destination {
			return
		}
		if flightServesDate(f, date) {
			flights = append(flights, f)
		}
	})
	if len(flights) == 0 {
		return nil, ErrNoMatchingFlight
	}
	return flights, nil
}

func flightServesDate(f Flight, date Date) bool {
	if f.Recurring == nil {
		return f.DateTime.Year == date.Year &&
			f.DateTime.Month == date.Month &&
			f.DateTime.Day == date.Day
	}
	return f.Recurring.RunsOn(date.Weekday())
}
