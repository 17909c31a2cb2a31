package get_refund_quote

import (
	"context"

	getRefundQuote "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_refund_quote"
)

type GetRefundQuoteUseCase interface {
	Execute(ctx context.Context, req *getRefundQuote.Request) (*getRefundQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
