package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for tokens that fail signature or
// claims validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims binds a user's identity into a session token. Tokens carry no
// expiry; a token stays valid as long as the signing secret does.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// TokenIssuer signs and verifies stateless session tokens with a
// process-wide HMAC secret.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue produces a signed token asserting the given user identity.
func (ti *TokenIssuer) Issue(userID, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
	})
	tokenString, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses tokenString and returns the identity it asserts. No route
// consumes this today; it exists so clients holding a token can eventually
// be authenticated with it.
func (ti *TokenIssuer) Verify(tokenString string) (userID, username string, err error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.UserID, claims.Username, nil
}
