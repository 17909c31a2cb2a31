package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/weplay-team/WePlay-BookingService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth извлекает идентификатор пользователя из заголовка X-User-ID и кладёт
// его в контекст запроса. Запросы без корректного заголовка отклоняются.
// Проверка подлинности заголовка - зона ответственности API-шлюза
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достаёт идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
