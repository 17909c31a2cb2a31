package create_match

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_match: invalid input data")

	// ErrInvalidDate возвращается при дате матча в прошлом
	ErrInvalidDate = errors.New("create_match: match date is in the past")

	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_match: facility not found")

	// ErrCourtNotFound возвращается, когда корт не найден на площадке
	ErrCourtNotFound = errors.New("create_match: court not found")

	// ErrFacilityClosed возвращается, когда корт не работает в указанную дату
	ErrFacilityClosed = errors.New("create_match: facility is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда часы матча выходят
	// за окно работы корта
	ErrOutsideOperatingHours = errors.New("create_match: requested hours are outside operating hours")

	// ErrAccessDenied возвращается, когда организатор не менеджер площадки
	ErrAccessDenied = errors.New("create_match: access denied")

	// ErrSlotAlreadyBooked возвращается, когда слот корта уже занят
	ErrSlotAlreadyBooked = errors.New("create_match: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_match: internal error")
)
