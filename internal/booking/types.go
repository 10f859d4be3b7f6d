// Package booking implements the deterministic core of the airline
// customer-service agent: an in-memory record store seeded with fixture
// data, route and schedule queries, recurrence-aware flight matching,
// deterministic flight selection, a confirmation-number ledger, and
// user lookup with support-ticket filing.
//
// The language-model side of the system (see internal/agent) treats these
// operations as tools; nothing in this package knows about prompts or
// models.
package booking

import "time"

// Date is a calendar date plus an hour-of-day. Language models are
// unreliable at emitting full RFC 3339 timestamps, so tool arguments use
// this explicit year/month/day/hour shape instead of time.Time.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
	Hour  int `json:"hour" yaml:"hour"`
}

// Weekday derives the day of the week using Go's proleptic Gregorian
// calendar. The hour is irrelevant to the weekday.
func (d Date) Weekday() DayOfWeek {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return dayOfWeek(t.Weekday())
}

// DayOfWeek is a weekday name as used in recurrence rules and tool I/O.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// dayOfWeek converts a time.Weekday to its DayOfWeek name.
func dayOfWeek(w time.Weekday) DayOfWeek {
	return DayOfWeek(w.String())
}

// IsWeekend reports whether the day is Saturday or Sunday.
func (d DayOfWeek) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// Frequency describes how often a recurring flight runs.
type Frequency string

const (
	// Daily services run every day of the week.
	Daily Frequency = "daily"
	// Weekly services run only on the weekdays listed in DaysOfWeek.
	Weekly Frequency = "weekly"
	// Weekdays services run Monday through Friday.
	Weekdays Frequency = "weekdays"
	// Weekends services run Saturday and Sunday.
	Weekends Frequency = "weekends"
)

// RecurringSchedule describes how a single flight record stands in for a
// repeating service. ExcludedDays is honored regardless of Frequency;
// DaysOfWeek is meaningful only when Frequency is Weekly.
type RecurringSchedule struct {
	Frequency    Frequency   `json:"frequency" yaml:"frequency"`
	ExcludedDays []DayOfWeek `json:"excluded_days,omitempty" yaml:"excluded_days,omitempty"`
	DaysOfWeek   []DayOfWeek `json:"days_of_week,omitempty" yaml:"days_of_week,omitempty"`
}

// RunsOn reports whether the service operates on the given weekday.
func (s *RecurringSchedule) RunsOn(day DayOfWeek) bool {
	for _, excluded := range s.ExcludedDays {
		if excluded == day {
			return false
		}
	}
	switch s.Frequency {
	case Daily:
		return true
	case Weekdays:
		return !day.IsWeekend()
	case Weekends:
		return day.IsWeekend()
	case Weekly:
		for _, d := range s.DaysOfWeek {
			if d == day {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Flight is a single flight record. DateTime is the anchor occurrence: for
// one-time flights it is the only valid departure, for recurring flights it
// fixes the hour-of-day while Recurring determines the valid calendar dates.
type Flight struct {
	FlightID    string             `json:"flight_id" yaml:"flight_id"`
	DateTime    Date               `json:"date_time" yaml:"date_time"`
	Origin      string             `json:"origin" yaml:"origin"`
	Destination string             `json:"destination" yaml:"destination"`
	Duration    float64            `json:"duration" yaml:"duration"`
	Price       float64            `json:"price" yaml:"price"`
	Recurring   *RecurringSchedule `json:"recurring_schedule,omitempty" yaml:"recurring_schedule,omitempty"`
}

// UserProfile is a registered customer. Name is the lookup key.
type UserProfile struct {
	UserID string `json:"user_id" yaml:"user_id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
}

// Itinerary is a booked flight owned by the ledger. Created by BookFlight,
// removed by CancelItinerary.
type Itinerary struct {
	ConfirmationNumber string      `json:"confirmation_number"`
	UserProfile        UserProfile `json:"user_profile"`
	Flight             Flight      `json:"flight"`
}

// Ticket is a filed customer-support request. Tickets are append-only;
// there is no resolution workflow.
type Ticket struct {
	UserRequest string      `json:"user_request"`
	UserProfile UserProfile `json:"user_profile"`
}

// RouteSummary is one entry in a SearchRoutes listing. Frequency and
// ExcludedDays are present only for recurring services.
type RouteSummary struct {
	FlightID     string      `json:"flight_id"`
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	Duration     float64     `json:"duration"`
	Price        float64     `json:"price"`
	SampleHour   int         `json:"sample_hour"`
	Recurring    bool        `json:"recurring"`
	Frequency    Frequency   `json:"frequency,omitempty"`
	ExcludedDays []DayOfWeek `json:"excluded_days,omitempty"`
}
