package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = []byte("board-dev-secret")
	jwtIssuer         = "board"
	jwtExpirationTime = time.Hour * 24
)

// Configure 用配置覆盖签名密钥、签发者与有效期
func Configure(secret, issuer string, expiration time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if issuer != "" {
		jwtIssuer = issuer
	}
	if expiration > 0 {
		jwtExpirationTime = expiration
	}
}

// UserClaims Token 中携带的用户身份
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// RemainingTTL 距离过期的剩余时间
func (c *UserClaims) RemainingTTL(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
