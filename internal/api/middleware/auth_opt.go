package middleware

import (
	"Board/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败、缺失或已注销则 UID 为 0
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserIDKey, uint64(0))

		tokenString, ok := security.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		if revoked, err := isRevoked(c.Request.Context(), tokenString); err != nil || revoked {
			c.Next()
			return
		}

		setIdentity(c, claims, tokenString)
		c.Next()
	}
}
