package models

import (
	"errors"
	"time"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	FacilityID  int64  `json:"facilityId"`
	CourtID     int64  `json:"courtId"`
	Type        string `json:"type"`
	MatchID     *int64 `json:"matchId,omitempty"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartHour   int    `json:"startHour"`
	EndHour     int    `json:"endHour"`
	StartTime   string `json:"startTime"` // "10:00"
	Status      string `json:"status"`
	PaidAmount  int64  `json:"paidAmount"`

	// Денормализованные данные
	FacilityName string  `json:"facilityName"`
	CourtName    string  `json:"courtName"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		FacilityID:         b.FacilityID,
		CourtID:            b.CourtID,
		Type:               string(b.Type),
		MatchID:            b.MatchID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartHour:          b.StartHour,
		EndHour:            b.EndHour,
		StartTime:          b.StartAt().Format(domain.TimeFormat),
		Status:             string(b.Status),
		PaidAmount:         b.PaidAmount,
		FacilityName:       b.FacilityName,
		CourtName:          b.CourtName,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByFacility,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
