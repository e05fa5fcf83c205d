package contexthelpers

import (
	"context"
	"net/http"
)

// IdentifyContext attaches the session's user ID to the request context.
func IdentifyContext(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}
