package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

type TokenInfo struct {
	UserName   string
	Subject    string
	Expiration time.Duration
}

// Claims is the identity a verified token carries.
type Claims struct {
	Subject   string
	UserName  string
	ID        string
	ExpiresAt time.Time
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

// Generate builds an unsigned token. Every token gets a fresh jti so two logins
// of the same user within one second still produce distinct session tokens.
func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":      data.Subject,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(data.Expiration).Unix(),
		"username": data.UserName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

func (gen *JWTService) Validate(token string) (Claims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Claims{}, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return Claims{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return Claims{}, ErrTokenNotValid
	}

	mapClaims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("jwt claims type assertion failed")
	}

	claims := Claims{}
	claims.Subject, _ = mapClaims["sub"].(string)
	claims.UserName, _ = mapClaims["username"].(string)
	claims.ID, _ = mapClaims["jti"].(string)

	expVal, ok := mapClaims["exp"].(float64)
	if !ok {
		return Claims{}, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if int64(expVal) < TimeNow().Unix() {
		return Claims{}, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
	}
	claims.ExpiresAt = time.Unix(int64(expVal), 0)

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("missing sub claim: %w", ErrTokenNotValid)
	}

	return claims, nil
}
