package join_match

import (
	"context"

	joinMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/join_match"
)

type JoinMatchUseCase interface {
	Execute(ctx context.Context, req *joinMatch.Request) (*joinMatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
