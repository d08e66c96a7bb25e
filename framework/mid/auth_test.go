package mid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"github.com/crmbridge/acrm-cust/auth/service"
	"github.com/crmbridge/acrm-cust/auth/service/mocks"
	"github.com/crmbridge/acrm-cust/framework/web"
)

func authContext(header string) *gin.Context {
	gin.SetMode(gin.TestMode)

	request := httptest.NewRequest(http.MethodPost, "http://example.com/acrm-cust/live", nil)
	if header != "" {
		request.Header.Set("Authorization", header)
	}

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func passThrough(ctx *gin.Context) error {
	ctx.Set("handled", true)
	return nil
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		on          func(*mocks.CredentialVerifier)
		wantMessage string
	}{
		{
			name:        "missing header",
			header:      "",
			wantMessage: "No token found",
		},
		{
			name:        "malformed header without scheme",
			header:      "justonetoken",
			wantMessage: "Invalid token",
		},
		{
			name:   "rejected credential",
			header: "Basic d3Jvbmc=",
			on: func(m *mocks.CredentialVerifier) {
				m.On("Verify", "Basic", "d3Jvbmc=").
					Return(service.Outcome{}).
					Once()
			},
			wantMessage: "Invalid token set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mocks.CredentialVerifier{}
			if tt.on != nil {
				tt.on(verifier)
			}

			handler := Auth(verifier)(passThrough)
			ctx := authContext(tt.header)

			err := handler(ctx)

			var webErr *web.Error
			assert.ErrorAs(t, err, &webErr)
			assert.Equal(t, http.StatusUnauthorized, webErr.Status)
			assert.Equal(t, tt.wantMessage, webErr.Err.Error())

			_, handled := ctx.Get("handled")
			assert.False(t, handled)

			verifier.AssertExpectations(t)
		})
	}

	t.Run("accepted credential reaches the handler", func(t *testing.T) {
		verifier := &mocks.CredentialVerifier{}
		verifier.On("Verify", "Basic", "b2s6b2s=").
			Return(service.Outcome{Valid: true}).
			Once()

		handler := Auth(verifier)(passThrough)
		ctx := authContext("Basic b2s6b2s=")

		assert.NoError(t, handler(ctx))

		_, handled := ctx.Get("handled")
		assert.True(t, handled)
	})

	t.Run("bearer claims are stashed on the context", func(t *testing.T) {
		claims := jwt.MapClaims{"sub": "agent-7"}

		verifier := &mocks.CredentialVerifier{}
		verifier.On("Verify", "Bearer", "signed-token").
			Return(service.Outcome{Valid: true, Data: claims}).
			Once()

		handler := Auth(verifier)(passThrough)
		ctx := authContext("Bearer signed-token")

		assert.NoError(t, handler(ctx))

		stored, ok := ctx.Get(CtxClaimsKey)
		assert.True(t, ok)
		assert.Equal(t, claims, stored)
	})
}
