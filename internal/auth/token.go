// Package auth issues and verifies the signed bearer tokens the API uses in
// place of server-side sessions, and provides the gin middleware that guards
// protected routes.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/model"
)

// ErrInvalidToken covers every verification failure: malformed structure,
// signature mismatch, and expiry. Callers get no more detail than "invalid".
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: identity, role, and the issued-at/expiry pair.
// The role is fixed at issuance and not re-checked against the live user row
// on each request; a leaked token stays valid until natural expiry.
type Claims struct {
	UserID int64      `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a process-wide HMAC-SHA256 secret.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewCodec(secret string, validity time.Duration) *Codec {
	if validity <= 0 {
		validity = 7 * 24 * time.Hour
	}
	return &Codec{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
}

func (c *Codec) Issue(userID int64, email string, role model.Role) (string, error) {
	now := c.now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Verify fails closed: any structural, signature, or expiry problem yields
// ErrInvalidToken. Signature comparison inside the jwt library is
// constant-time (HMAC verify re-computes and compares with hmac.Equal).
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
