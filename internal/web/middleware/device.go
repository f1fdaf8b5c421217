package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/chayapatp/topupstore/internal/services/storefront"
)

type contextKey string

const (
	deviceContextKey     contextKey = "device"
	controllerContextKey contextKey = "controller"

	deviceCookieName = "device"
)

// GetDeviceID retrieves the device id from the request context
func GetDeviceID(ctx context.Context) string {
	id, _ := ctx.Value(deviceContextKey).(string)
	return id
}

// GetController retrieves the storefront controller for this device
func GetController(ctx context.Context) *storefront.Controller {
	c, _ := ctx.Value(controllerContextKey).(*storefront.Controller)
	return c
}

// Device identifies the browser with a long-lived cookie and attaches
// that device's storefront controller to the request context. The
// cookie is the web analogue of the original client's local storage:
// it is what lets a remembered login survive both server restarts and
// browser restarts.
func Device(registry *storefront.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := ""
			if cookie, err := r.Cookie(deviceCookieName); err == nil {
				deviceID = cookie.Value
			}
			if deviceID == "" {
				deviceID = generateDeviceID()
				http.SetCookie(w, &http.Cookie{
					Name:     deviceCookieName,
					Value:    deviceID,
					Path:     "/",
					MaxAge:   86400 * 365,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctrl := registry.Controller(deviceID)

			ctx := r.Context()
			ctx = context.WithValue(ctx, deviceContextKey, deviceID)
			ctx = context.WithValue(ctx, controllerContextKey, ctrl)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func generateDeviceID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "dev_" + base64.RawURLEncoding.EncodeToString(b)
}
