package mid

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/crmbridge/acrm-cust/framework/web"
	"github.com/crmbridge/acrm-cust/internal"
	"github.com/crmbridge/acrm-cust/logger"
)

// Panics recovers from panics and converts the panic to an error, so no
// per-request failure ever crashes the process.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			defer func() {
				if r := recover(); r != nil {
					log.Errorf("%s: panic: %v\n%s", v.TraceID, r, debug.Stack())

					if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
						hub.WithScope(func(scope *sentry.Scope) {
							hub.Recover(fmt.Errorf("panic: %v", r))
							sentry.Flush(time.Second * 5)
						})
					}

					// The caller gets the generic failure envelope, never
					// the panic detail.
					err = web.RespondError(ctx, web.ErrUnexpected)
				}
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
