package middleware

import (
	"github.com/gin-gonic/gin"

	"recipe-site-backend/internal/shared/utils"
)

const ClientIPKey = "client_ip"

// ClientIP resolves the caller address once per request and stores it
// under "client_ip" for the access log.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIPKey, utils.ClientIP(c))
		c.Next()
	}
}
