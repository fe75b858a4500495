package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken signals a token that failed parsing, signature verification,
// or expiry checks.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the signed assertion set identifying an authenticated request.
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// SessionUser is the identity slice of the session view.
type SessionUser struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// SessionView is the externally visible session shape returned to clients.
type SessionView struct {
	Token     string      `json:"token"`
	User      SessionUser `json:"user"`
	IssuedAt  time.Time   `json:"issuedAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// TokenIssuer mints, verifies, and refreshes session claims. It holds no
// per-session state; the claims themselves are the session.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds an issuer signing with the given HMAC secret.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

// Mint creates fresh claims for a login event. An unset role defaults to
// RoleUser so accounts persisted without one still carry a usable session.
func (i *TokenIssuer) Mint(userID string, role Role) Claims {
	if role == "" {
		role = RoleUser
	}
	now := i.now()
	return Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
}

// Refresh re-mints claims from an existing set without a login event. The
// role is carried forward as-is, never reset to a default; only the validity
// window moves.
func (i *TokenIssuer) Refresh(claims Claims) Claims {
	now := i.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	return claims
}

// Sign serializes claims into a compact signed token.
func (i *TokenIssuer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
func (i *TokenIssuer) Verify(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// SessionViewFor signs the claims and projects them into the external session
// shape. Enrichment is a pure transform: subject and role are copied from the
// claims, nothing else is touched.
func (i *TokenIssuer) SessionViewFor(claims Claims) (SessionView, error) {
	token, err := i.Sign(claims)
	if err != nil {
		return SessionView{}, err
	}
	return SessionView{
		Token: token,
		User: SessionUser{
			ID:   claims.UserID,
			Role: claims.Role,
		},
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
