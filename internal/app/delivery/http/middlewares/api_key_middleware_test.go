package middlewares

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireSuperadminAPIKey(t *testing.T) {
	testAPIKey := "test-superadmin-api-key-12345"
	middlewares := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				SuperadminAPIKey: testAPIKey,
			},
		},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool)
		assert.True(t, ok, "api key auth marker should be set")
		assert.True(t, apiKeyAuth, "api key auth marker should be true")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/audit-logs", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/audit-logs", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing API key")
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/audit-logs", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("Unconfigured API Key rejects everything", func(t *testing.T) {
		unconfigured := &Middlewares{
			Log:            zap.NewNop(),
			InternalConfig: &config.InternalConfig{},
		}

		req := httptest.NewRequest("GET", "/api/v1/audit-logs", nil)
		req.Header.Set(constvars.HeaderAPIKey, "")

		rr := httptest.NewRecorder()
		handler := unconfigured.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "empty configured key should never authorize")
	})
}
