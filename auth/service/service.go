package service

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"

	"github.com/crmbridge/acrm-cust/common"
)

// SchemeBasic is the only scheme with dedicated handling; every other
// scheme is treated as a signed token.
const SchemeBasic = "Basic"

// Outcome is the result of verifying one credential. It lives only for
// the duration of a request.
type Outcome struct {
	Valid bool
	Data  jwt.MapClaims
}

//go:generate mockery --name CredentialVerifier --output ./mocks
type CredentialVerifier interface {
	Verify(scheme, token string) Outcome
}

// AuthService verifies Authorization credentials. Basic tokens are
// compared against the configured shared secret; everything else is
// treated as a signed JWT.
type AuthService struct {
	basicToken []byte
	jwtSecret  []byte
}

func NewAuthService(cfg *common.Config) *AuthService {
	pair := fmt.Sprintf("%s:%s", cfg.APIUser, cfg.APIPassword)

	return &AuthService{
		basicToken: []byte(base64.StdEncoding.EncodeToString([]byte(pair))),
		jwtSecret:  []byte(cfg.JWTSecret),
	}
}

// Verify checks a single credential. The token value is never logged.
func (s *AuthService) Verify(scheme, token string) Outcome {
	switch scheme {
	case SchemeBasic:
		valid := subtle.ConstantTimeCompare(s.basicToken, []byte(token)) == 1
		return Outcome{Valid: valid}
	default:
		return s.verifyToken(token)
	}
}

// verifyToken validates a signed HS256 token against the configured
// secret and returns its claims on success.
func (s *AuthService) verifyToken(token string) Outcome {
	if len(s.jwtSecret) == 0 {
		return Outcome{}
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return Outcome{}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Outcome{Valid: true}
	}

	return Outcome{Valid: true, Data: claims}
}
