package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgInvalidCourtID    = "некорректный ID корта"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFacilityNotFound  = "площадка не найдена"
	msgCourtNotFound     = "корт не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/courts/{courtId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(facilityID, courtID, dateStr)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Court not found: facility_id=%d, court_id=%d",
				facilityID, courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/courts/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /facilities/{id}/courts/{id}/available-slots - Failed to get slots: facility_id=%d, court_id=%d, error=%v",
				facilityID, courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /facilities/{id}/courts/{id}/available-slots - Slots retrieved successfully: facility_id=%d, court_id=%d, slots_count=%d",
		facilityID, courtID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
