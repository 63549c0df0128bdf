package middleware

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recover captures panics, reports them to sentry when configured, and
// turns them into a 500 instead of tearing down the connection.
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("panic recovered: %v", r)
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.Recover(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
