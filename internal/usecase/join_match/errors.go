package join_match

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("join_match: invalid input data")

	// ErrMatchNotFound возвращается, когда матч не найден
	ErrMatchNotFound = errors.New("join_match: match not found")

	// ErrMatchNotJoinable возвращается, когда набор закрыт, матч заполнен
	// или уже начался
	ErrMatchNotJoinable = errors.New("join_match: match is not joinable")

	// ErrAlreadyJoined возвращается при повторном присоединении
	ErrAlreadyJoined = errors.New("join_match: user has already joined the match")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("join_match: internal error")
)
