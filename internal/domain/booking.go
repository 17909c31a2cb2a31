package domain

import "time"

// BookingType represents what a booking pays for
type BookingType string

const (
	TypeFacilityReservation BookingType = "facility_reservation"
	TypeMatchParticipation  BookingType = "match_participation"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByUser     BookingStatus = "cancelled_by_user"
	StatusCancelledByFacility BookingStatus = "cancelled_by_facility"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a paid booking: either a private court reservation
// or one participant's seat in a social match
type Booking struct {
	ID         int64
	UserID     int64
	FacilityID int64
	CourtID    int64
	Type       BookingType
	MatchID    *int64 // set for participation bookings and the match's own slot-holding row

	BookingDate time.Time
	StartHour   int // half-open interval [StartHour, EndHour), hour-aligned
	EndHour     int

	Status     BookingStatus
	PaidAmount int64 // minor currency units

	// Denormalized data for history
	FacilityName string
	CourtName    string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking holds its time range
// (cancelled and no-show bookings free their slots)
func (b *Booking) IsOccupying() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByFacility &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByFacility
}

// IsTerminal returns true if the booking reached a state that cannot change
func (b *Booking) IsTerminal() bool {
	return b.IsCancelled() || b.Status == StatusCompleted || b.Status == StatusNoShow
}

// CoversHour reports whether the booking occupies the hour [h, h+1)
func (b *Booking) CoversHour(h int) bool {
	return h >= b.StartHour && h < b.EndHour
}

// StartAt returns the absolute scheduled start of the booking
// The stored date and hour are authoritative; refund quotes must never use
// a client-supplied start time
func (b *Booking) StartAt() time.Time {
	d := b.BookingDate
	return time.Date(d.Year(), d.Month(), d.Day(), b.StartHour, 0, 0, 0, d.Location())
}

// CourtDayFilter identifies the booking ledger of one court on one date
type CourtDayFilter struct {
	FacilityID      int64
	CourtID         int64
	Date            time.Time
	IncludeInactive bool // include cancelled/no-show rows (history views)
}
