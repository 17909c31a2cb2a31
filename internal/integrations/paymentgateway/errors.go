package paymentgateway

import "errors"

var (
	// ErrRefundRejected возвращается, когда шлюз отклонил поручение на возврат
	ErrRefundRejected = errors.New("paymentgateway: refund rejected")

	// ErrGatewayUnavailable возвращается при сетевых ошибках и 5xx от шлюза
	ErrGatewayUnavailable = errors.New("paymentgateway: gateway unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway: internal error")
)
