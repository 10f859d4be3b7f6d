package booking

// GetUser looks up a user profile by exact, case-sensitive name.
func (s *Store) GetUser(name string) (UserProfile, bool) {
	user, ok := s.users[name]
	return user, ok
}

// FileTicket records a customer-support ticket for a request the agent
// cannot handle and returns its identifier. Ticket ids use the same bounded
// collision-retry as confirmation numbers.
func (s *Store) FileTicket(userRequest string, user UserProfile) (string, error) {
	s.ticketMu.Lock()
	defer s.ticketMu.Unlock()

	ticketID, err := s.uniqueID(ticketIDLength, func(id string) bool {
		_, taken := s.tickets[id]
		return taken
	})
	if err != nil {
		return "", err
	}

	s.tickets[ticketID] = Ticket{
		UserRequest: userRequest,
		UserProfile: user,
	}
	return ticketID, nil
}
