package mid

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crmbridge/acrm-cust/auth/service"
	"github.com/crmbridge/acrm-cust/framework/web"
)

// CtxClaimsKey is where verified token claims are stored on the request.
const CtxClaimsKey = "claims"

// Auth middleware gates every business endpoint on the Authorization
// header. Basic credentials are checked against the configured shared
// secret, anything else is verified as a signed token. The credential
// value itself is never logged.
func Auth(verifier service.CredentialVerifier) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			header := ctx.GetHeader("Authorization")
			if header == "" {
				return web.NewRequestError(web.ErrNoToken, http.StatusUnauthorized)
			}

			parts := strings.Split(header, " ")
			if len(parts) < 2 {
				return web.NewRequestError(web.ErrInvalidToken, http.StatusUnauthorized)
			}

			outcome := verifier.Verify(parts[0], parts[1])
			if !outcome.Valid {
				return web.NewRequestError(web.ErrInvalidTokenSet, http.StatusUnauthorized)
			}

			if outcome.Data != nil {
				ctx.Set(CtxClaimsKey, outcome.Data)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
