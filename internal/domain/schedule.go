package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotConfigured возвращается, когда для дня недели нет записи расписания
	// Вызывающий код трактует это как "нет слотов", а не как ошибку
	ErrNotConfigured = errors.New("domain: operating hours not configured for weekday")

	// ErrHoliday возвращается, когда день отмечен выходным
	ErrHoliday = errors.New("domain: facility is closed on this day")

	// ErrInvalidOperatingHours возвращается при нарушении инварианта open < close
	ErrInvalidOperatingHours = errors.New("domain: invalid operating hours")
)

// OperatingHours расписание работы корта на один день недели
// Приходит из справочника площадок; здесь только читается
type OperatingHours struct {
	DayOfWeek time.Weekday
	OpenHour  int // ignored when IsHoliday
	CloseHour int // 0 means midnight and is normalized to 24
	IsHoliday bool
}

// Validate проверяет инвариант open < close (после нормализации полуночи)
func (h OperatingHours) Validate() error {
	if h.IsHoliday {
		return nil
	}
	open, close := h.OpenHour, normalizeCloseHour(h.CloseHour)
	if open < MinHour || open >= MaxHour || close <= MinHour || close > MaxHour {
		return fmt.Errorf("%w: hours out of range [%d, %d]", ErrInvalidOperatingHours, MinHour, MaxHour)
	}
	if open >= close {
		return fmt.Errorf("%w: open %02d:00 is not before close %02d:00", ErrInvalidOperatingHours, open, close)
	}
	return nil
}

// OperatingCalendar недельное расписание работы корта
type OperatingCalendar struct {
	byDay map[time.Weekday]OperatingHours
}

// NewOperatingCalendar строит календарь из записей расписания
// Дни недели без записи остаются несконфигурированными; дубликаты и
// некорректные записи отклоняются
func NewOperatingCalendar(entries []OperatingHours) (*OperatingCalendar, error) {
	byDay := make(map[time.Weekday]OperatingHours, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, ok := byDay[e.DayOfWeek]; ok {
			return nil, fmt.Errorf("%w: duplicate entry for %s", ErrInvalidOperatingHours, e.DayOfWeek)
		}
		byDay[e.DayOfWeek] = e
	}
	return &OperatingCalendar{byDay: byDay}, nil
}

// DayWindow открытое окно работы на конкретную дату, [OpenHour, CloseHour)
type DayWindow struct {
	OpenHour  int
	CloseHour int
}

// HoursFor возвращает окно работы на дату
// Выходной день - ErrHoliday, отсутствие записи - ErrNotConfigured
// Час закрытия 0 нормализуется к 24 до использования
func (c *OperatingCalendar) HoursFor(date time.Time) (DayWindow, error) {
	hours, ok := c.byDay[date.Weekday()]
	if !ok {
		return DayWindow{}, ErrNotConfigured
	}
	if hours.IsHoliday {
		return DayWindow{}, ErrHoliday
	}
	return DayWindow{
		OpenHour:  hours.OpenHour,
		CloseHour: normalizeCloseHour(hours.CloseHour),
	}, nil
}

// normalizeCloseHour трактует закрытие в 00:00 как конец дня
func normalizeCloseHour(h int) int {
	if h == 0 {
		return MaxHour
	}
	return h
}
