package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser clients served from origins. An empty list falls back
// to gin-contrib's default, which rejects cross-origin calls.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHdr}
	cfg.ExposeHeaders = []string{requestIDHdr, "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(cfg)
}
