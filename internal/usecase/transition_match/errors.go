package transition_match

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_match: invalid input data")

	// ErrUnknownAction возвращается при неизвестном действии перехода
	ErrUnknownAction = errors.New("transition_match: unknown transition action")

	// ErrMatchNotFound возвращается, когда матч не найден
	ErrMatchNotFound = errors.New("transition_match: match not found")

	// ErrAccessDenied возвращается, когда актор не менеджер площадки
	ErrAccessDenied = errors.New("transition_match: access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("transition_match: invalid match status transition")

	// ErrTooEarly возвращается при попытке начать или завершить матч раньше
	// расписания
	ErrTooEarly = errors.New("transition_match: transition is not allowed yet")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_match: internal error")
)
