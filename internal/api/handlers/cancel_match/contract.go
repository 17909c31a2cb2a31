package cancel_match

import (
	"context"

	cancelMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/cancel_match"
)

type CancelMatchUseCase interface {
	Execute(ctx context.Context, req *cancelMatch.Request) (*cancelMatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
