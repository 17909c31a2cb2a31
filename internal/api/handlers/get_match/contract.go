package get_match

import (
	"context"

	"github.com/weplay-team/WePlay-BookingService/internal/service/matches/models"
)

type MatchService interface {
	GetByID(ctx context.Context, id int64) (*models.MatchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
