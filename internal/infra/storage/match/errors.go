package match

import "errors"

var (
	// ErrMatchNotFound возвращается, когда матч не найден
	ErrMatchNotFound = errors.New("match.repository: match not found")

	// ErrMatchNotJoinable возвращается, когда условный инкремент участников
	// не прошёл: матч заполнен или не в статусе набора
	ErrMatchNotJoinable = errors.New("match.repository: match is not joinable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("match.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("match.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("match.repository: failed to scan row")
)
