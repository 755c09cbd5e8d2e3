package auth

import (
	"errors"
	"strconv"
	"time"

	"skyhi-pos/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what a verified credential yields: a stable subject and role.
type Claims struct {
	UserID uint
	Role   model.Role
}

// TokenVerifier abstracts the identity check so the HTTP layer does not care
// whether tokens are signed locally or by a third-party provider.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

var ErrInvalidToken = errors.New("invalid or expired token")

type customClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// HSProvider signs and verifies HS256 access tokens.
type HSProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewHSProvider(secret, issuer string, ttl time.Duration) *HSProvider {
	return &HSProvider{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign issues an access token for the user.
func (p *HSProvider) Sign(userID uint, role model.Role) (string, error) {
	now := p.now()
	claims := customClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secret)
}

// Verify parses and validates an access token.
func (p *HSProvider) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, ErrInvalidToken
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	uid, err := strconv.ParseUint(cc.Subject, 10, 32)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: uint(uid), Role: model.Role(cc.Role)}, nil
}
