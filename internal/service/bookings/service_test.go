package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	bookingRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	"github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
	"github.com/weplay-team/WePlay-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	// аргументы последнего GetByUserID
	gotUserID int64
	gotStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotUserID = userID
	f.gotStatus = status
	return f.list, nil
}

type fakeFacilityClient struct {
	facility *facilityservice.Facility
	err      error
}

func (f *fakeFacilityClient) GetFacility(_ context.Context, _ int64) (*facilityservice.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.facility, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const (
	ownerID   = int64(7)
	managerID = int64(42)
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		UserID:       ownerID,
		FacilityID:   1,
		CourtID:      2,
		Type:         domain.TypeFacilityReservation,
		BookingDate:  time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartHour:    14,
		EndHour:      16,
		Status:       domain.StatusConfirmed,
		PaidAmount:   3000,
		FacilityName: "Сетка и Мяч",
		CourtName:    "Корт 1",
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	facility := &facilityservice.Facility{ID: 1, ManagerIDs: []int64{managerID}}
	return NewService(repo, &fakeFacilityClient{facility: facility}, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	t.Run("owner reads the booking", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: testBooking()})

		resp, err := svc.GetByID(context.Background(), 1, ownerID)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2026-06-10", resp.BookingDate)
		assert.Equal(t, "14:00", resp.StartTime)
		assert.Equal(t, "Сетка и Мяч", resp.FacilityName)
	})

	t.Run("facility manager reads a foreign booking", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: testBooking()})

		resp, err := svc.GetByID(context.Background(), 1, managerID)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: testBooking()})

		_, err := svc.GetByID(context.Background(), 1, 999)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{})

		_, err := svc.GetByID(context.Background(), 1, ownerID)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	t.Run("returns the user history", func(t *testing.T) {
		repo := &fakeBookingRepo{list: []*domain.Booking{testBooking()}}
		svc := newTestService(repo)

		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID})

		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(ownerID), resp.Bookings[0].UserID)
		assert.Equal(t, int64(ownerID), repo.gotUserID)
		assert.Nil(t, repo.gotStatus)
	})

	t.Run("passes the status filter through", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := newTestService(repo)
		status := "confirmed"

		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, Status: &status})

		require.NoError(t, err)
		require.NotNil(t, repo.gotStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.gotStatus)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{})
		status := "archived"

		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, Status: &status})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty history is an empty list", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{})

		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID})

		require.NoError(t, err)
		assert.NotNil(t, resp.Bookings)
		assert.Empty(t, resp.Bookings)
	})
}
