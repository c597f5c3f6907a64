package core

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Authenticate resolves the bearer token on the request to a Principal and
// attaches it to the context. Any failure along the way (missing header,
// malformed header, bad signature, expiry, deleted subject) collapses into
// a single 401 so the client learns nothing about which gate rejected it.
func Authenticate(tokens *TokenService, users UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			respondError(c, http.StatusUnauthorized, "Not Authorized")
			c.Abort()
			return
		}

		subjectID, err := tokens.Verify(tokenString)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Not Authorized")
			c.Abort()
			return
		}

		// The subject may have been deleted since the token was issued;
		// a missing user is treated as unauthenticated, not as an error.
		u, err := users.FindByID(c.Request.Context(), subjectID)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Not Authorized")
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{ID: u.ID, IsAdmin: u.IsAdmin})
		c.Next()
	}
}

// AdminOnly ensures the authenticated principal has the admin flag.
// This design reuses 401 for role failures rather than 403.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if !ok || !p.IsAdmin {
			respondError(c, http.StatusUnauthorized, "Not Authorized (Admin Only)")
			c.Abort()
			return
		}
		c.Next()
	}
}

// principalFrom fetches the Principal set by Authenticate.
func principalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// CORSMiddleware applies permissive cross-origin headers and answers
// preflight requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Recovery converts panics into the unified 500 payload so an unexpected
// failure never crashes the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				respondError(c, http.StatusInternalServerError, "Internal Server Error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
