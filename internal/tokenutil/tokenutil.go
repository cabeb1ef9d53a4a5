package tokenutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_interface"
	"github.com/golang-jwt/jwt/v4"
)

// 令牌中承载用户 ObjectID 的声明名
const ClaimUserID = "_id"

type JWTValidator struct {
	secret []byte
}

func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

var _ book_interface.TokenValidator = (*JWTValidator)(nil)

// Validate 仅接受 HMAC 签名；签名、过期或声明缺失均返回 domain.ErrAuth
func (v *JWTValidator) Validate(requestToken string) (string, error) {
	requestToken = strings.TrimSpace(requestToken)
	if requestToken == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrAuth)
	}

	token, err := jwt.Parse(requestToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: invalid claims", domain.ErrAuth)
	}

	id, ok := claims[ClaimUserID].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %s claim missing", domain.ErrAuth, ClaimUserID)
	}
	return id, nil
}

// CreateAccessToken 签发 HS256 令牌，expiry<=0 表示不过期
func CreateAccessToken(userID, secret string, expiry time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	claims := jwt.MapClaims{ClaimUserID: userID}
	if expiry > 0 {
		claims["exp"] = time.Now().Add(expiry).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
