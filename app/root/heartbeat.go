// Package root contains endpoints not tied to any resource
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Validate only runs when the auth middleware let the request through, so
// reaching it means the token is good.
func Validate(c *gin.Context) {
	c.Status(http.StatusOK)
}
