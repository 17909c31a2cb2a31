package matches

import "errors"

var (
	// ErrMatchNotFound возвращается, когда матч не найден
	ErrMatchNotFound = errors.New("match not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
