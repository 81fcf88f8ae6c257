package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// userIDHeader carries the authenticated user's id, set by the API gateway
// after token verification. This service trusts it as-is.
const userIDHeader = "X-User-ID"

type contextKey string

const userIDContextKey contextKey = "userID"

// Auth requires a valid X-User-ID header and stores the id in the request
// context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			respondUnauthorized(w, "thiếu thông tin xác thực")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w, "thông tin xác thực không hợp lệ")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}

// The middleware cannot import the handlers package (handlers import this
// one for GetUserID), so it carries its own minimal error writer.
func respondUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
