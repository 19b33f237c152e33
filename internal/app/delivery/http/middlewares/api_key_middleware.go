package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// RequireSuperadminAPIKey guards operator-only endpoints such as the
// audit log listing. Unlike session auth there is no actor behind the
// key, only the api_key_auth marker.
func (m *Middlewares) RequireSuperadminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if m.InternalConfig.App.SuperadminAPIKey == "" || apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)

		m.Log.Info("API Key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("user_agent", r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
