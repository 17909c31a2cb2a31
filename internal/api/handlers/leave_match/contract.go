package leave_match

import (
	"context"

	leaveMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/leave_match"
)

type LeaveMatchUseCase interface {
	Execute(ctx context.Context, req *leaveMatch.Request) (*leaveMatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
