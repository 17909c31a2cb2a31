package leave_match

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("leave_match: invalid input data")

	// ErrMatchNotFound возвращается, когда матч не найден
	ErrMatchNotFound = errors.New("leave_match: match not found")

	// ErrNotParticipant возвращается, когда у пользователя нет активного
	// участия в матче
	ErrNotParticipant = errors.New("leave_match: user is not a participant of the match")

	// ErrCannotLeave возвращается, когда статус участия не допускает отмену
	ErrCannotLeave = errors.New("leave_match: participation cannot be cancelled")

	// ErrRefundGateway возвращается при ошибке платёжного шлюза; транзакция
	// выхода при этом откатывается
	ErrRefundGateway = errors.New("leave_match: refund gateway error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("leave_match: internal error")
)
