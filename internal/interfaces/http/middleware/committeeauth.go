package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubgate/internal/shared/utils"
)

const committeeKeyHeader = "X-Committee-Key"

// CommitteeAuth guards the manual-review endpoints with a shared secret.
// An unconfigured key rejects everything rather than opening the routes.
func CommitteeAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(committeeKeyHeader)

		if key == "" || presented == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
