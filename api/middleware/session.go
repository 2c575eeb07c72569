package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avtomir/avtomir-backend/pkg/logger"
)

const (
	sessionCookieName = "avtomir_session"
	sessionHeader     = "X-Session-Id"
	sessionMaxAge     = 30 * 24 * 60 * 60
)

// Session resolves the anonymous session id owning the caller's cart.
// The id comes from the X-Session-Id header or the session cookie; when
// neither is present a new one is minted. The id is always echoed back
// in both the header and the cookie.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := resolveSessionID(r)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(sessionHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSessionID(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get(sessionHeader)); header != "" {
		if _, err := uuid.Parse(header); err == nil {
			return header
		}
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}
	return ""
}
