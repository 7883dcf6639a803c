package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// TokenService issues and validates HS256-signed identity tokens. It is
// stateless: there is no revocation list, a leaked token stays valid until
// its natural expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the subject and role, expiring ttl from now.
func (s *TokenService) Issue(subject string, role domain.Role) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature, algorithm, expiry, and claim shape. Every
// failure collapses to domain.ErrInvalidToken so callers cannot probe for
// why a token was rejected.
func (s *TokenService) Validate(token string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}
	rawRole, _ := claims["role"].(string)
	role, ok := domain.ParseRole(rawRole)
	if !ok {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	return ports.TokenClaims{Subject: subject, Role: role}, nil
}
