package create_match

import (
	"errors"
	"net/http"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	createMatch "github.com/weplay-team/WePlay-BookingService/internal/usecase/create_match"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты матча, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "площадка не найдена"
	msgCourtNotFound      = "корт не найден"
	msgForbidden          = "доступ запрещен"
	msgFacilityClosed     = "площадка закрыта в выбранную дату"
	msgOutsideHours       = "часы матча вне окна работы корта"
	msgSlotNotAvailable   = "слот корта уже занят"
	msgInvalidMatchDate   = "некорректная дата матча"
	msgInvalidInput       = "некорректные данные матча"
)

type Handler struct {
	useCase CreateMatchUseCase
	logger  Logger
}

func NewHandler(useCase CreateMatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/matches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /matches - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateMatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /matches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /matches - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createMatch.ErrFacilityNotFound):
			h.logger.Warn("POST /matches - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createMatch.ErrCourtNotFound):
			h.logger.Warn("POST /matches - Court not found: facility_id=%d, court_id=%d", req.FacilityID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createMatch.ErrAccessDenied):
			h.logger.Warn("POST /matches - Access denied: user_id=%d, facility_id=%d", userID, req.FacilityID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createMatch.ErrFacilityClosed):
			h.logger.Warn("POST /matches - Facility closed: facility_id=%d, date=%s", req.FacilityID, req.MatchDate)
			handlers.RespondBadRequest(w, msgFacilityClosed)

		case errors.Is(err, createMatch.ErrOutsideOperatingHours):
			h.logger.Warn("POST /matches - Outside operating hours: court_id=%d, hours=[%d,%d)",
				req.CourtID, req.StartHour, req.EndHour)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createMatch.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /matches - Slot not available: court_id=%d, date=%s", req.CourtID, req.MatchDate)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createMatch.ErrInvalidDate):
			h.logger.Warn("POST /matches - Invalid match date: date=%s", req.MatchDate)
			handlers.RespondBadRequest(w, msgInvalidMatchDate)

		case errors.Is(err, createMatch.ErrInvalidInput):
			h.logger.Warn("POST /matches - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /matches - Failed to create match: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /matches - Match created successfully: match_id=%d, user_id=%d, court_id=%d",
		result.MatchID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
