package facilityservice

import (
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

// Client клиент справочника площадок и кортов
// Справочник для этого сервиса read-only: расписания редактируются
// администраторами на стороне справочника
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFacility получает площадку с кортами и расписаниями
func (c *Client) GetFacility(ctx context.Context, facilityID int64) (*Facility, error) {
	url := fmt.Sprintf("%s/internal/facilities/%d", c.baseURL, facilityID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrFacilityNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var facility Facility
	if err := json.NewDecoder(resp.Body).Decode(&facility); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &facility, nil
}

// GetCourt получает корт площадки
func (c *Client) GetCourt(ctx context.Context, facilityID, courtID int64) (*Court, error) {
	facility, err := c.GetFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	return facility.CourtByID(courtID)
}
