package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// AdminAuth guards the console with a static bearer token. An empty
// configured token disables the whole surface rather than leaving it open.
type AdminAuth struct {
	token  string
	logger logger.Interface
}

func NewAdminAuth(token string, logger logger.Interface) *AdminAuth {
	return &AdminAuth{
		token:  token,
		logger: logger,
	}
}

func (m *AdminAuth) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.token == "" {
			utils.ErrorResponseWithError(c,
				errors.NewPermissionError("console is disabled, no admin token configured"))
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.ErrorResponseWithError(c,
				errors.NewPermissionError("missing bearer token"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(m.token)) != 1 {
			m.logger.Warnw("rejected console request with bad token",
				"path", c.Request.URL.Path, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c,
				errors.NewPermissionError("invalid admin token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
