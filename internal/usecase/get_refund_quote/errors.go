package get_refund_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_refund_quote: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("get_refund_quote: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("get_refund_quote: access denied")

	// ErrCannotCancel возвращается, когда статус не допускает отмену
	// и котировка не имеет смысла
	ErrCannotCancel = errors.New("get_refund_quote: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_refund_quote: internal error")
)
