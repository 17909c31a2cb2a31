package domain

import "time"

// RefundTier policy bracket that produced a quote
type RefundTier string

const (
	// TierReservationFull аренда корта, отмена за 48 часов и раньше - 100%
	TierReservationFull RefundTier = "reservation_full"
	// TierReservationHalf аренда корта, отмена за 24 часа и раньше - 50%
	TierReservationHalf RefundTier = "reservation_half"
	// TierMatchDayBefore участие в матче, отмена за 24 часа и раньше - 80%
	TierMatchDayBefore RefundTier = "match_day_before"
	// TierMatchSameDay участие в матче, отмена в день матча не позже чем
	// за 90 минут до начала - 20%
	TierMatchSameDay RefundTier = "match_same_day"
	// TierNoRefund слишком поздно, возврата нет
	TierNoRefund RefundTier = "no_refund"
	// TierFacilityCancelled отмена по инициативе площадки - полный возврат
	// независимо от оставшегося до начала времени
	TierFacilityCancelled RefundTier = "facility_cancelled"
)

// RefundQuote результат расчёта возврата
// Вычисляется на момент отмены по авторитетному времени начала из хранилища;
// никогда не сохраняется и не принимается от клиента
type RefundQuote struct {
	GrossAmount  int64
	RefundAmount int64
	RefundRatio  float64
	ReasonTier   RefundTier
}

// refund ratios in percent; integer math keeps floor(paid*ratio) exact
const (
	percentFull      = 100
	percentHalf      = 50
	percentMatchHigh = 80
	percentMatchLow  = 20
)

// QuoteRefund computes the refund owed for cancelling a paid booking
// as a function of time remaining until the scheduled start.
//
// Facility reservations: >= 48h full refund, >= 24h half, later nothing.
// Match participation commits other players around the participant, so its
// curve is steeper: >= 24h refunds 80%, down to 90 minutes before start 20%
// (the 90-minute boundary inclusive), later nothing.
//
// Pure and total: an elapsed start simply quotes zero, never an error.
// Malformed timestamps are rejected by callers before this point
func QuoteRefund(bookingType BookingType, scheduledStart, now time.Time, paidAmount int64) RefundQuote {
	quote := RefundQuote{GrossAmount: paidAmount}
	if paidAmount < 0 {
		quote.GrossAmount = 0
	}

	until := scheduledStart.Sub(now)

	var percent int64
	var tier RefundTier

	switch {
	case until < 0:
		// бронирование уже началось или прошло
		percent, tier = 0, TierNoRefund
	case bookingType == TypeFacilityReservation:
		switch {
		case until >= 48*time.Hour:
			percent, tier = percentFull, TierReservationFull
		case until >= 24*time.Hour:
			percent, tier = percentHalf, TierReservationHalf
		default:
			percent, tier = 0, TierNoRefund
		}
	default: // TypeMatchParticipation
		switch {
		case until >= 24*time.Hour:
			percent, tier = percentMatchHigh, TierMatchDayBefore
		case until >= 90*time.Minute:
			percent, tier = percentMatchLow, TierMatchSameDay
		default:
			percent, tier = 0, TierNoRefund
		}
	}

	quote.RefundAmount = quote.GrossAmount * percent / 100
	quote.RefundRatio = float64(percent) / 100
	quote.ReasonTier = tier
	return quote
}

// FullRefundQuote котировка для отмены по инициативе площадки: клиент не
// выбирал отмену, поэтому тарифная сетка не применяется и оплата
// возвращается целиком
func FullRefundQuote(paidAmount int64) RefundQuote {
	quote := RefundQuote{GrossAmount: paidAmount}
	if paidAmount < 0 {
		quote.GrossAmount = 0
	}
	quote.RefundAmount = quote.GrossAmount
	quote.RefundRatio = 1
	quote.ReasonTier = TierFacilityCancelled
	return quote
}
