package marketplaceserver

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/anycomp/marketplace-api/internal/shared/errors"
)

// RequestIDHeader carries the correlation id echoed on every response.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns a request id when the caller did not send one and
// echoes it back, so log lines and traces can be tied to a response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// openPaths are reachable without a bearer token. Documentation stays open
// so the API can be explored before credentials are issued.
var openPaths = []string{"/healthz", "/openapi.json", "/docs"}

// BearerAuth rejects requests lacking the configured token. An empty token
// disables the gate entirely.
func BearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		for _, open := range openPaths {
			if path == open || strings.HasPrefix(path, open+"/") {
				c.Next()
				return
			}
		}
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("missing or invalid bearer token"))
			c.Abort()
			return
		}
		c.Next()
	}
}
