package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what comes back out of a valid session token.
type SessionClaims struct {
	SessionID string
	UserID    uint
}

// GenerateSessionToken signs an HS256 token naming a server-side session
// row. The token expires together with the row it points at.
func GenerateSessionToken(secret, sessionID string, userID uint, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"sub": userID,
		"exp": expiresAt.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken checks signature and expiry and extracts the
// session reference. Whether the referenced session still exists is the
// caller's problem.
func ValidateSessionToken(secret, tokenString string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, errors.New("invalid token")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Unix(int64(exp), 0).Before(time.Now()) {
			return SessionClaims{}, errors.New("token has expired")
		}
	} else {
		return SessionClaims{}, errors.New("invalid or missing expiration claim")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return SessionClaims{}, errors.New("session id not found in token")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return SessionClaims{}, errors.New("user id not found in token")
	}

	return SessionClaims{SessionID: sid, UserID: uint(sub)}, nil
}
