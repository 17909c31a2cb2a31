package update_match_status

import (
	"context"

	transitionMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/transition_match"
)

type TransitionMatchUseCase interface {
	Execute(ctx context.Context, req *transitionMatch.Request) (*transitionMatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
