package booking

import (
	"context"

	"skydesk/internal/agent"
	"skydesk/internal/schema"
)

// -----------------------------------------------------------------------------
// Tool Input Types
// -----------------------------------------------------------------------------

type GetAvailableDestinationsInput struct {
	Origin string `json:"origin"`
}

type GetAllDestinationsInput struct{}

type SearchRoutesInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type FetchFlightInfoInput struct {
	Date        Date   `json:"date"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type PickFlightInput struct {
	Flights []Flight `json:"flights"`
}

type BookFlightInput struct {
	Flight      Flight      `json:"flight"`
	UserProfile UserProfile `json:"user_profile"`
}

type FetchItineraryInput struct {
	ConfirmationNumber string `json:"confirmation_number"`
}

type CancelItineraryInput struct {
	ConfirmationNumber string      `json:"confirmation_number"`
	UserProfile        UserProfile `json:"user_profile"`
}

type GetUserInfoInput struct {
	Name string `json:"name"`
}

type FileTicketInput struct {
	UserRequest string      `json:"user_request"`
	UserProfile UserProfile `json:"user_profile"`
}

// -----------------------------------------------------------------------------
// Tool Result Types
// -----------------------------------------------------------------------------

// BookFlightResult is the result of booking a flight.
type BookFlightResult struct {
	ConfirmationNumber string    `json:"confirmation_number"`
	Itinerary          Itinerary `json:"itinerary"`
}

// FetchItineraryResult reports whether an itinerary exists. Absence is a
// valid answer for this tool, not a failure.
type FetchItineraryResult struct {
	Found     bool       `json:"found"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}

// CancelItineraryResult is the result of a successful cancellation.
type CancelItineraryResult struct {
	Cancelled          bool   `json:"cancelled"`
	ConfirmationNumber string `json:"confirmation_number"`
}

// GetUserInfoResult reports whether a user profile exists.
type GetUserInfoResult struct {
	Found       bool         `json:"found"`
	UserProfile *UserProfile `json:"user_profile,omitempty"`
}

// FileTicketResult carries the identifier of a freshly filed ticket.
type FileTicketResult struct {
	TicketID string `json:"ticket_id"`
}

// -----------------------------------------------------------------------------
// Shared schema fragments
// -----------------------------------------------------------------------------

func dateProp(description string) *schema.Property {
	return schema.ObjectProp(description, map[string]*schema.Property{
		"year":  schema.Integer("Calendar year (e.g., 2025)"),
		"month": schema.Integer("Month, 1-12").Min(1).Max(12),
		"day":   schema.Integer("Day of month"),
		"hour":  schema.Integer("Hour of day, 0-23").Min(0).Max(23),
	}, "year", "month", "day")
}

func flightProp(description string) *schema.Property {
	return schema.ObjectProp(description, map[string]*schema.Property{
		"flight_id":   schema.String("Unique flight identifier (e.g., DA123)"),
		"date_time":   dateProp("Anchor departure date and hour"),
		"origin":      schema.String("Origin airport code"),
		"destination": schema.String("Destination airport code"),
		"duration":    schema.Number("Flight duration in hours"),
		"price":       schema.Number("Ticket price in USD"),
		"recurring_schedule": schema.ObjectProp(
			"Recurrence rule, present only for recurring services",
			map[string]*schema.Property{
				"frequency": schema.String("How often the service runs").
					Enum("daily", "weekly", "weekdays", "weekends"),
				"excluded_days": schema.Array("Weekdays the service never runs on",
					schema.String("Weekday name (e.g., Saturday)")),
				"days_of_week": schema.Array("Weekdays a weekly service runs on",
					schema.String("Weekday name (e.g., Monday)")),
			}),
	}, "flight_id", "date_time", "origin", "destination", "duration", "price")
}

func userProfileProp(description string) *schema.Property {
	return schema.ObjectProp(description, map[string]*schema.Property{
		"user_id": schema.String("Unique user identifier"),
		"name":    schema.String("User's name"),
		"email":   schema.String("User's email address"),
	}, "user_id", "name", "email")
}

// -----------------------------------------------------------------------------
// ToolSet
// -----------------------------------------------------------------------------

// ToolSet exposes a Store's operations as agent tools. The tool names and
// contracts are the boundary the language model programs against; the store
// itself stays free of any agent concerns.
type ToolSet struct {
	store *Store
}

// NewToolSet creates a ToolSet over the given store.
func NewToolSet(store *Store) *ToolSet {
	return &ToolSet{store: store}
}

// GetAvailableDestinationsTool lists destinations reachable from an origin.
func (t *ToolSet) GetAvailableDestinationsTool() *agent.ToolFunc[GetAvailableDestinationsInput, []string] {
	return agent.NewToolFunc(
		"get_available_destinations",
		"Get all available destination airports from a given origin airport",
		schema.Object(map[string]*schema.Property{
			"origin": schema.String("Origin airport code (e.g., SFO)"),
		}, "origin"),
		func(ctx context.Context, input GetAvailableDestinationsInput) ([]string, error) {
			return t.store.DestinationsFrom(input.Origin), nil
		},
	)
}

// GetAllDestinationsTool lists every destination airport in the system.
func (t *ToolSet) GetAllDestinationsTool() *agent.ToolFunc[GetAllDestinationsInput, []string] {
	return agent.NewToolFunc(
		"get_all_destinations",
		"Get all destination airports served anywhere in the system",
		schema.Object(map[string]*schema.Property{}),
		func(ctx context.Context, input GetAllDestinationsInput) ([]string, error) {
			return t.store.AllDestinations(), nil
		},
	)
}

// SearchRoutesTool lists routes from an origin with schedule and pricing.
func (t *ToolSet) SearchRoutesTool() *agent.ToolFunc[SearchRoutesInput, []RouteSummary] {
	return agent.NewToolFunc(
		"search_routes",
		"Search available routes from an origin, optionally filtered by "+
			"destination, with recurrence and pricing information",
		schema.Object(map[string]*schema.Property{
			"origin":      schema.String("Origin airport code"),
			"destination": schema.String("Optional destination airport code to filter by"),
		}, "origin"),
		func(ctx context.Context, input SearchRoutesInput) ([]RouteSummary, error) {
			return t.store.SearchRoutes(input.Origin, input.Destination), nil
		},
	)
}

// FetchFlightInfoTool resolves concrete flights for a route on a date.
func (t *ToolSet) FetchFlightInfoTool() *agent.ToolFunc[FetchFlightInfoInput, []Flight] {
	return agent.NewToolFunc(
		"fetch_flight_info",
		"Fetch the flights from origin to destination on the given date",
		schema.Object(map[string]*schema.Property{
			"date":        dateProp("Travel date"),
			"origin":      schema.String("Origin airport code"),
			"destination": schema.String("Destination airport code"),
		}, "date", "origin", "destination"),
		func(ctx context.Context, input FetchFlightInfoInput) ([]Flight, error) {
			return t.store.MatchFlights(input.Date, input.Origin, input.Destination)
		},
	)
}

// PickFlightTool selects the best flight from a candidate list.
func (t *ToolSet) PickFlightTool() *agent.ToolFunc[PickFlightInput, Flight] {
	return agent.NewToolFunc(
		"pick_flight",
		"Pick the best flight from the candidates: shortest duration, "+
			"cheapest on ties",
		schema.Object(map[string]*schema.Property{
			"flights": schema.Array("Candidate flights, exactly as returned by fetch_flight_info",
				flightProp("A candidate flight")),
		}, "flights"),
		func(ctx context.Context, input PickFlightInput) (Flight, error) {
			return PickFlight(input.Flights)
		},
	)
}

// BookFlightTool books a flight for a user.
func (t *ToolSet) BookFlightTool() *agent.ToolFunc[BookFlightInput, BookFlightResult] {
	return agent.NewToolFunc(
		"book_flight",
		"Book a flight on behalf of the user and return the confirmation number",
		schema.Object(map[string]*schema.Property{
			"flight":       flightProp("The flight to book, exactly as returned by fetch_flight_info or pick_flight"),
			"user_profile": userProfileProp("The user booking the flight, as returned by get_user_info"),
		}, "flight", "user_profile"),
		func(ctx context.Context, input BookFlightInput) (BookFlightResult, error) {
			confirmationNumber, itinerary, err := t.store.BookFlight(input.Flight, input.UserProfile)
			if err != nil {
				return BookFlightResult{}, err
			}
			return BookFlightResult{
				ConfirmationNumber: confirmationNumber,
				Itinerary:          itinerary,
			}, nil
		},
	)
}

// FetchItineraryTool looks up a booked itinerary.
func (t *ToolSet) FetchItineraryTool() *agent.ToolFunc[FetchItineraryInput, FetchItineraryResult] {
	return agent.NewToolFunc(
		"fetch_itinerary",
		"Fetch a booked itinerary by confirmation number; reports absence "+
			"rather than failing",
		schema.Object(map[string]*schema.Property{
			"confirmation_number": schema.String("The booking's confirmation number"),
		}, "confirmation_number"),
		func(ctx context.Context, input FetchItineraryInput) (FetchItineraryResult, error) {
			itinerary, ok := t.store.FetchItinerary(input.ConfirmationNumber)
			if !ok {
				return FetchItineraryResult{Found: false}, nil
			}
			return FetchItineraryResult{Found: true, Itinerary: &itinerary}, nil
		},
	)
}

// CancelItineraryTool cancels a booked itinerary.
func (t *ToolSet) CancelItineraryTool() *agent.ToolFunc[CancelItineraryInput, CancelItineraryResult] {
	return agent.NewToolFunc(
		"cancel_itinerary",
		"Cancel an itinerary on behalf of the user",
		schema.Object(map[string]*schema.Property{
			"confirmation_number": schema.String("The booking's confirmation number"),
			"user_profile":        userProfileProp("The user requesting the cancellation"),
		}, "confirmation_number", "user_profile"),
		func(ctx context.Context, input CancelItineraryInput) (CancelItineraryResult, error) {
			if err := t.store.CancelItinerary(input.ConfirmationNumber, input.UserProfile); err != nil {
				return CancelItineraryResult{}, err
			}
			return CancelItineraryResult{
				Cancelled:          true,
				ConfirmationNumber: input.ConfirmationNumber,
			}, nil
		},
	)
}

// GetUserInfoTool looks up a user profile by name.
func (t *ToolSet) GetUserInfoTool() *agent.ToolFunc[GetUserInfoInput, GetUserInfoResult] {
	return agent.NewToolFunc(
		"get_user_info",
		"Fetch a user profile by exact name",
		schema.Object(map[string]*schema.Property{
			"name": schema.String("The user's name, case-sensitive (e.g., Adam)"),
		}, "name"),
		func(ctx context.Context, input GetUserInfoInput) (GetUserInfoResult, error) {
			user, ok := t.store.GetUser(input.Name)
			if !ok {
				return GetUserInfoResult{Found: false}, nil
			}
			return GetUserInfoResult{Found: true, UserProfile: &user}, nil
		},
	)
}

// FileTicketTool files a support ticket for requests the agent cannot handle.
func (t *ToolSet) FileTicketTool() *agent.ToolFunc[FileTicketInput, FileTicketResult] {
	return agent.NewToolFunc(
		"file_ticket",
		"File a customer support ticket when the request cannot be handled "+
			"with the other tools",
		schema.Object(map[string]*schema.Property{
			"user_request": schema.String("The customer's request, verbatim"),
			"user_profile": userProfileProp("The user the ticket is filed for"),
		}, "user_request", "user_profile"),
		func(ctx context.Context, input FileTicketInput) (FileTicketResult, error) {
			ticketID, err := t.store.FileTicket(input.UserRequest, input.UserProfile)
			if err != nil {
				return FileTicketResult{}, err
			}
			return FileTicketResult{TicketID: ticketID}, nil
		},
	)
}

// RegisterAll registers every booking tool on the given toolchain.
func (t *ToolSet) RegisterAll(tc *agent.ToolChain) {
	tc.Register(t.GetAvailableDestinationsTool())
	tc.Register(t.GetAllDestinationsTool())
	tc.Register(t.SearchRoutesTool())
	tc.Register(t.FetchFlightInfoTool())
	tc.Register(t.PickFlightTool())
	tc.Register(t.BookFlightTool())
	tc.Register(t.FetchItineraryTool())
	tc.Register(t.CancelItineraryTool())
	tc.Register(t.GetUserInfoTool())
	tc.Register(t.FileTicketTool())
}
