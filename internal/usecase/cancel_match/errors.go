package cancel_match

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_match: invalid input data")

	// ErrMatchNotFound возвращается, когда матч не найден
	ErrMatchNotFound = errors.New("cancel_match: match not found")

	// ErrAccessDenied возвращается, когда актор не менеджер площадки
	ErrAccessDenied = errors.New("cancel_match: access denied")

	// ErrInvalidStatus возвращается при отмене матча в статусе, из которого
	// отмена недоступна
	ErrInvalidStatus = errors.New("cancel_match: match status does not allow cancellation")

	// ErrCancellationNotAllowed возвращается, когда матч набрал половину
	// состава и больше
	ErrCancellationNotAllowed = errors.New("cancel_match: match is at half capacity or above")

	// ErrRefundGateway возвращается при ошибке платёжного шлюза; транзакция
	// отмены при этом откатывается
	ErrRefundGateway = errors.New("cancel_match: refund gateway error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_match: internal error")
)
