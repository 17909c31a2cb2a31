package create_match

import (
	"fmt"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizerID <= 0 {
		return fmt.Errorf("%w: organizerID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour < domain.MinHour || req.EndHour > domain.MaxHour || req.StartHour >= req.EndHour {
		return fmt.Errorf("%w: invalid hour interval [%d,%d)", ErrInvalidInput, req.StartHour, req.EndHour)
	}

	if req.TeamCapacity < domain.MinTeamCapacity || req.TeamCapacity > domain.MaxTeamCapacity {
		return fmt.Errorf("%w: teamCapacity must be in [%d,%d]",
			ErrInvalidInput, domain.MinTeamCapacity, domain.MaxTeamCapacity)
	}

	if req.EntryFee < 0 {
		return fmt.Errorf("%w: entryFee must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateMatchTime проверяет, что матч не в прошлом
func validateMatchTime(req *Request, now time.Time) error {
	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}

	if isSameDay(req.Date, now) && req.StartHour <= now.Hour() {
		return fmt.Errorf("%w: hour %02d:00 has already started", ErrInvalidDate, req.StartHour)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
