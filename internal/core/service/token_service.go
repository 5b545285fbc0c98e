package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// tokenClaims is the JWT claim set carried by issued tokens. The subject is
// the user's email.
type tokenClaims struct {
	UserID int64    `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user's id, email and role names with an
// absolute expiry.
func (s *TokenService) Issue(userID int64, email string, roles []string) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the signature and expiry and returns the embedded claims.
// Any failure yields domain.ErrTokenInvalid.
func (s *TokenService) Parse(token string) (*ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.ExpiresAt == nil {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Subject,
		Roles:     claims.Roles,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IsValid reports whether token carries a valid signature, is not expired and
// was issued for expectedSubject.
func (s *TokenService) IsValid(token, expectedSubject string) bool {
	claims, err := s.Parse(token)
	if err != nil {
		return false
	}
	return claims.Email == expectedSubject && time.Now().Before(claims.ExpiresAt)
}

// IsExpired reports whether the token's expiry has elapsed. Unparseable
// tokens are treated as expired.
func (s *TokenService) IsExpired(token string) bool {
	claims, err := s.Parse(token)
	if err != nil {
		return true
	}
	return !time.Now().Before(claims.ExpiresAt)
}
