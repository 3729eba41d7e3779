package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into the stored session and puts the
// raw session data into the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate lets anonymous callers through. Usecases decide what an
// empty session means for them.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(constvars.HeaderAuthorization) == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionData, err := m.resolveSession(r)
		if err != nil {
			m.Log.Info("Continuing as anonymous request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the session role against the RBAC policy for the request
// method and path. It must run after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.SessionService.ParseSessionData(r.Context(), utils.GetSessionData(r.Context()))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		resource := m.resourcePath(r.URL.Path)
		if !m.allowed(session.Role, r.Method, resource) {
			utils.LogSecurityEvent(m.Log, "role_denied", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingUserIDKey, session.UserID),
				zap.String(constvars.LoggingRoleKey, session.Role),
				zap.String(constvars.LoggingEndpointKey, resource),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) allowed(role, method, path string) bool {
	if m.Enforcer == nil || role == "" {
		return false
	}

	ok, err := m.Enforcer.Enforce(role, method, path)
	if err != nil {
		m.Log.Error("Middlewares.allowed error enforcing policy",
			zap.String(constvars.LoggingRoleKey, role),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return false
	}
	return ok
}

// resourcePath strips the versioned API prefix so policy paths stay stable
// across deployments.
func (m *Middlewares) resourcePath(path string) string {
	base := ""
	if prefix := m.InternalConfig.App.EndpointPrefix; prefix != "" {
		base += "/" + prefix
	}
	if version := m.InternalConfig.App.Version; version != "" {
		base += "/" + version
	}

	resource := strings.TrimPrefix(path, base)
	if len(resource) > 1 {
		resource = strings.TrimSuffix(resource, "/")
	}
	return resource
}

func (m *Middlewares) resolveSession(r *http.Request) (string, error) {
	token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return "", err
	}

	return m.SessionService.GetSessionData(r.Context(), sessionID)
}
