package booking

// PickFlight deterministically selects one flight from the candidates:
// shortest duration first, cheapest price on duration ties. When duration
// and price are both equal the earliest candidate in input order wins, so
// the choice is stable for any fixed input.
//
// Candidates must be non-empty; MatchFlights never produces an empty set,
// so an empty input is a caller error (ErrNoCandidates).
func PickFlight(candidates []Flight) (Flight, error) {
	if len(candidates) == 0 {
		return Flight{}, ErrNoCandidates
	}
	best := candidates[0]
	for _, f := range candidates[1:] {
		if f.Duration < best.Duration ||
			(f.Duration == best.Duration && f.Price < best.Price) {
			best = f
		}
	}
	return best, nil
}
