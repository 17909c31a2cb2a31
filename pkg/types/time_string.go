package types

import (
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM"
// Используется на границах сервиса: в ответах API и в расписаниях,
// приходящих из справочника площадок
type TimeString string

const timeLayout = "15:04"

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromHour создает TimeString для целого часа (10 -> "10:00")
// Час 24 представляется как "00:00" следующего дня
func FromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour%24))
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("types: invalid time string %q: %w", string(t), err)
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает часовую компоненту
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time string %q: %w", string(t), err)
	}
	return parsed.Hour(), nil
}

// Minute возвращает минутную компоненту
func (t TimeString) Minute() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time string %q: %w", string(t), err)
	}
	return parsed.Minute(), nil
}

// IsBefore сравнивает два значения в пределах одного дня
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}
