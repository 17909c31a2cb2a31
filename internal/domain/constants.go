package domain

// Slot geometry: the marketplace sells whole hours only
const (
	SlotDurationHours = 1
	MinHour           = 0
	MaxHour           = 24 // exclusive end of day; close time "00:00" normalizes to 24
)

// Business validation constants
const (
	MinTeamCapacity             = 2
	MaxTeamCapacity             = 40
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByFacility,
	StatusNoShow,
}

// OccupyingStatuses список статусов, занимающих слот
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
