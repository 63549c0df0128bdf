package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tastebookhq/tastebook/domain"
)

// SetRequestContextWithTimeout bounds every request with a deadline and
// attaches the request provenance the audit trail records.
func SetRequestContextWithTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		ctx = domain.WithProvenance(ctx, domain.Provenance{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
