package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/chayapatp/topupstore/internal/web/templates/layout"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash retrieves the flash message from the request context
// Returns nil if no flash message is set
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash sets a flash message to be displayed on the next request.
// The message is URL-escaped so Thai text survives the cookie encoding.
func SetFlash(w http.ResponseWriter, flashType, message string) {
	value := flashType + ":" + url.QueryEscape(message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				// Clear the cookie
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	for i := 0; i < len(value); i++ {
		if value[i] == ':' {
			message, err := url.QueryUnescape(value[i+1:])
			if err != nil {
				message = value[i+1:]
			}
			return &layout.FlashMessage{
				Type:    value[:i],
				Message: message,
			}
		}
	}
	// No separator: treat the whole value as an info message
	message, err := url.QueryUnescape(value)
	if err != nil {
		message = value
	}
	return &layout.FlashMessage{
		Type:    "info",
		Message: message,
	}
}
