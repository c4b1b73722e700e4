package services

import (
	"errors"
	"fmt"
	"time"

	"gin-accounts/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry is the fixed validity window for issued tokens; expiry
// is the only invalidation mechanism, tokens are never revoked.
const AccessTokenExpiry = 30 * time.Minute

type ITokenService interface {
	Issue(claims jwt.MapClaims) (string, error)
	Validate(tokenString string) (jwt.MapClaims, error)
}

type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// NewTokenService builds a token service for the given HMAC algorithm name
// (HS256, HS384, HS512). An unknown or non-HMAC algorithm is a startup
// error, not a silent fallback.
func NewTokenService(secret string, algorithm string, expiry time.Duration) (ITokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		expiry: expiry,
	}, nil
}

// Issue signs the given claims after stamping them with an exp claim.
func (s *TokenService) Issue(claims jwt.MapClaims) (string, error) {
	stamped := jwt.MapClaims{}
	for key, value := range claims {
		stamped[key] = value
	}
	stamped["exp"] = time.Now().Add(s.expiry).Unix()

	token := jwt.NewWithClaims(s.method, stamped)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the decoded claims.
func (s *TokenService) Validate(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
