package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrCourtNotFound возвращается, когда корт не найден на площадке
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrFacilityClosed возвращается, когда корт не работает в указанную дату
	ErrFacilityClosed = errors.New("create_booking: facility is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда запрошенные часы выходят
	// за окно работы корта
	ErrOutsideOperatingHours = errors.New("create_booking: requested hours are outside operating hours")

	// ErrSlotAlreadyBooked возвращается проигравшему гонку за слот
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается при попытке забронировать уже начавшийся час
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
