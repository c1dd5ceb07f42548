package session

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid 令牌无效（签名不匹配、被篡改、结构不合法等一律归入此错误）
var ErrTokenInvalid = errors.New("会话令牌无效")

// Claims 会话令牌载荷，仅携带用户 ID
type Claims struct {
	UserID uint `json:"user_id"`
	jwtv5.RegisteredClaims
}

// Codec 会话令牌编解码器
// 令牌不设过期时间：会话在密钥轮换或 Cookie 被清除前一直有效
type Codec struct {
	secret []byte
}

// NewCodec 创建会话令牌编解码器
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode 将用户 ID 编码为带签名的 URL-safe 令牌
func (c *Codec) Encode(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:       uuid.New().String(),
			IssuedAt: jwtv5.NewNumericDate(time.Now()),
			Issuer:   "memberbook",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode 验证签名并解出用户 ID
// 任何验证失败（篡改、截断、算法不符）都返回 ErrTokenInvalid，
// 调用方将其视为匿名访问，绝不向用户暴露解码错误
func (c *Codec) Decode(tokenString string) (uint, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
