package middleware

import (
	"Board/internal/pkg/redis"
	"Board/internal/pkg/response"
	"Board/internal/pkg/security"
	"context"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextRolesKey  = "roles"
	ContextTokenKey  = "token"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := security.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Fail(c, response.Unauthorized, "로그인이 필요합니다.")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "유효하지 않거나 만료된 토큰입니다.")
			c.Abort()
			return
		}

		revoked, err := isRevoked(c.Request.Context(), tokenString)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "check token revocation failed", "err", err)
			response.Fail(c, response.InternalServerError, "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
			c.Abort()
			return
		}
		if revoked {
			response.Fail(c, response.Unauthorized, "유효하지 않거나 만료된 토큰입니다.")
			c.Abort()
			return
		}

		setIdentity(c, claims, tokenString)
		c.Next()
	}
}

func isRevoked(ctx context.Context, tokenString string) (bool, error) {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return true, nil
	}
	return redis.IsTokenRevoked(ctx, signature)
}

func setIdentity(c *gin.Context, claims *security.UserClaims, tokenString string) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextRolesKey, claims.Roles)
	c.Set(ContextTokenKey, tokenString)

	newCtx := context.WithValue(c.Request.Context(), ContextUserIDKey, claims.UserID)
	c.Request = c.Request.WithContext(newCtx)
}
