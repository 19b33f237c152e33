package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Authenticate resolves the bearer token into an ActorContext and stores
// it on the request context together with a request id. Everything behind
// this middleware can rely on the actor being normalized already.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		actor, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_KEY, actor)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, constvars.REQUEST_ID_PREFIX+uuid.NewString())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
