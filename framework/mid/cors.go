package mid

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors returns the gin CORS middleware for the upstream telephony
// integration, which calls this gateway from a browser origin.
func Cors() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	return cors.New(cfg)
}
