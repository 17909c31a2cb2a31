package create_booking

import (
	"fmt"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
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

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateBookingTime проверяет, что бронирование не в прошлом
func validateBookingTime(req *Request, now time.Time) error {
	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}

	// В пределах сегодняшнего дня нельзя бронировать уже начавшийся час
	if isSameDay(req.Date, now) && req.StartHour <= now.Hour() {
		return fmt.Errorf("%w: hour %02d:00 has already started", ErrTooLateToBook, req.StartHour)
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
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
