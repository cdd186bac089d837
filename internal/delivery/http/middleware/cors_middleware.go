package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	// FrontendURL is the deployed site, always allowed
	FrontendURL string
	// Extra explicit origins
	AllowedOrigins []string
	// Production disables the localhost dev origins and Vercel previews
	Production bool
}

var devOrigins = map[string]bool{
	"http://localhost:3000": true,
	"http://127.0.0.1:3000": true,
	"http://localhost:3001": true,
}

// CORSMiddleware adds CORS headers for cross-origin requests from the
// portfolio frontend. Disallowed origins get no CORS headers and their
// preflight is rejected with 403.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins)+1)
	if cfg.FrontendURL != "" {
		allowed[cfg.FrontendURL] = true
	}
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = true
	}

	isAllowed := func(origin string) bool {
		switch {
		case origin == "":
			// same-origin request
			return true
		case allowed[origin]:
			return true
		case cfg.Production:
			return false
		case devOrigins[origin]:
			return true
		default:
			return strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app")
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		ok := isAllowed(origin)

		if ok && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Request-ID, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if ok {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
