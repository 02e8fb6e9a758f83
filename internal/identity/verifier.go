package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Verifier resolves a session token issued by the identity provider into the
// provider's user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// ClerkVerifier validates RS256 session tokens against the provider's JWKS
// endpoint. Key material is fetched and refreshed by keyfunc in the background.
type ClerkVerifier struct {
	jwks keyfunc.Keyfunc
}

func NewClerkVerifier(ctx context.Context, jwksURL string) (*ClerkVerifier, error) {
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, err
	}
	return &ClerkVerifier{jwks: jwks}, nil
}

func (v *ClerkVerifier) Verify(ctx context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, v.jwks.Keyfunc, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	return subjectFromClaims(parsed.Claims)
}

// StaticVerifier validates HS256 tokens signed with a shared secret. It backs
// local development and tests, where no hosted provider is reachable.
type StaticVerifier struct {
	secret []byte
}

func NewStaticVerifier(secret string) *StaticVerifier {
	return &StaticVerifier{secret: []byte(secret)}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	return subjectFromClaims(parsed.Claims)
}

func subjectFromClaims(claims jwt.Claims) (string, error) {
	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
