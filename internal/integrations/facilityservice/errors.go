package facilityservice

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("facilityservice: facility not found")

	// ErrCourtNotFound возвращается, когда корт не найден на площадке
	ErrCourtNotFound = errors.New("facilityservice: court not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("facilityservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("facilityservice: internal error")
)
