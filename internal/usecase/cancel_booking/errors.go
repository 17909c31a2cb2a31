package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не
	// менеджер площадки
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrAlreadyTerminal возвращается при отмене бронирования в конечном статусе
	ErrAlreadyTerminal = errors.New("cancel_booking: booking already in terminal status")

	// ErrCannotCancel возвращается, когда статус не допускает отмену
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrRefundGateway возвращается при ошибке платёжного шлюза; транзакция
	// отмены при этом откатывается
	ErrRefundGateway = errors.New("cancel_booking: refund gateway error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
