package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session identifies a signed-in user.
type Session struct {
	UserId    uuid.UUID
	ExpiresAt time.Time
}

type Provider interface {
	// GetSession returns nil, nil when no token is presented.
	GetSession(ctx context.Context, token string) (*Session, error)
}

type jwtProvider struct {
	secret []byte
}

// NewJWTProvider verifies HS256 tokens whose subject is the user id.
func NewJWTProvider(secret []byte) Provider {
	return &jwtProvider{secret: secret}
}

func (p *jwtProvider) GetSession(_ context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	return &Session{
		UserId:    userId,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SignToken issues a session token for userId that expires after ttl.
func SignToken(secret []byte, userId uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userId.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
