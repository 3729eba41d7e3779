package utils

import (
	"context"
	"net/http"
	"strings"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
)

// GetSessionData returns the raw session stored by the authentication
// middleware, or "" for anonymous requests.
func GetSessionData(ctx context.Context) string {
	if sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string); ok {
		return sessionData
	}
	return ""
}

func GetQueryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func ExtractBearerToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
}
