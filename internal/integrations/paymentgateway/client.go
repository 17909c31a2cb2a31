package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного шлюза
// Сервис не работает с платёжным SDK напрямую - только отправляет шлюзу
// абстрактные поручения на возврат. Идемпотентность на стороне шлюза
// обеспечивается ключом, равным ссылке на бронирование: повторная отправка
// того же поручения безопасна
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// refundInstruction поручение на возврат
type refundInstruction struct {
	BookingRef string `json:"bookingRef"`
	Amount     int64  `json:"amount"`
}

// Refund отправляет шлюзу поручение на возврат средств
func (c *Client) Refund(ctx context.Context, bookingRef string, amount int64) error {
	payload, err := json.Marshal(refundInstruction{BookingRef: bookingRef, Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal instruction: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/refunds", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", bookingRef)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		c.log.Info("paymentgateway: refund accepted, ref=%s amount=%d", bookingRef, amount)
		return nil
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrGatewayUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrRefundRejected, resp.StatusCode, string(body))
	}
}
