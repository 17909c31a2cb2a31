package facilityservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/pkg/types"
)

// Facility площадка из справочника
type Facility struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ManagerIDs []int64 `json:"managerIds"`
	Courts     []Court `json:"courts"`
}

// Court корт площадки с недельным расписанием работы
type Court struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	HourlyRate     int64      `json:"hourlyRate"` // minor currency units
	OperatingHours []DayHours `json:"operatingHours"`
}

// DayHours расписание работы корта на день недели
// Дни без записи считаются несконфигурированными
type DayHours struct {
	DayOfWeek string            `json:"dayOfWeek"` // "monday" .. "sunday"
	OpenTime  *types.TimeString `json:"openTime,omitempty"`
	CloseTime *types.TimeString `json:"closeTime,omitempty"`
	IsHoliday bool              `json:"isHoliday"`
}

// CourtByID находит корт площадки
func (f *Facility) CourtByID(courtID int64) (*Court, error) {
	for i := range f.Courts {
		if f.Courts[i].ID == courtID {
			return &f.Courts[i], nil
		}
	}
	return nil, ErrCourtNotFound
}

// IsManagedBy проверяет, что пользователь управляет площадкой
func (f *Facility) IsManagedBy(userID int64) bool {
	for _, id := range f.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ToOperatingCalendar конвертирует расписание корта в доменный календарь
// Некорректные записи справочника (неизвестный день недели, незаполненное
// время) отклоняются как ErrInvalidResponse - политика возврата и расчёт
// слотов никогда не работают с додуманными значениями
func (c *Court) ToOperatingCalendar() (*domain.OperatingCalendar, error) {
	entries := make([]domain.OperatingHours, 0, len(c.OperatingHours))

	for _, dh := range c.OperatingHours {
		weekday, err := parseWeekday(dh.DayOfWeek)
		if err != nil {
			return nil, err
		}

		if dh.IsHoliday {
			entries = append(entries, domain.OperatingHours{DayOfWeek: weekday, IsHoliday: true})
			continue
		}

		if dh.OpenTime == nil || dh.CloseTime == nil {
			return nil, fmt.Errorf("%w: missing open/close time for %s", ErrInvalidResponse, dh.DayOfWeek)
		}

		openHour, err := dh.OpenTime.Hour()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		closeHour, err := dh.CloseTime.Hour()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}

		entries = append(entries, domain.OperatingHours{
			DayOfWeek: weekday,
			OpenHour:  openHour,
			CloseHour: closeHour,
		})
	}

	calendar, err := domain.NewOperatingCalendar(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return calendar, nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func parseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdays[strings.ToLower(s)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidResponse, s)
}
