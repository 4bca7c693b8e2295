package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims 会话 cookie 中携带的声明，Id(jti) 为服务端会话 ID
type Claims struct {
	UserID uint `json:"uid"`
	jwt.StandardClaims
}

// CreateToken 为会话签发 HS256 令牌
func CreateToken(sessionID string, userID uint, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
			Issuer:    "campus-connect",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken 校验签名和过期时间
func ParseToken(token string, secret []byte) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid || claims.Id == "" {
		return nil, false
	}
	return claims, true
}
