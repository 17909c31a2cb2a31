package create_booking

import (
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	createBooking "github.com/weplay-team/WePlay-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  int64   `json:"facilityId"`
	CourtID     int64   `json:"courtId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartHour   int     `json:"startHour"`
	EndHour     int     `json:"endHour"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	FacilityID   int64   `json:"facilityId"`
	CourtID      int64   `json:"courtId"`
	BookingDate  string  `json:"bookingDate"`
	StartHour    int     `json:"startHour"`
	EndHour      int     `json:"endHour"`
	Status       string  `json:"status"`
	PaidAmount   int64   `json:"paidAmount"`
	FacilityName string  `json:"facilityName"`
	CourtName    string  `json:"courtName"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		CourtID:    r.CourtID,
		Date:       bookingDate,
		StartHour:  r.StartHour,
		EndHour:    r.EndHour,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		FacilityID:   resp.FacilityID,
		CourtID:      resp.CourtID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartHour:    resp.StartHour,
		EndHour:      resp.EndHour,
		Status:       resp.Status,
		PaidAmount:   resp.PaidAmount,
		FacilityName: resp.FacilityName,
		CourtName:    resp.CourtName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
