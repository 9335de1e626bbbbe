package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the authenticated principal attached to each request. Core
// operations take its fields as explicit parameters rather than reading
// ambient request state.
type Payload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// Tokens last days*hours*minutes*seconds.
const tokenTTL = 3 * 24 * time.Hour

func GenerateSignature(payload Payload, secret string) (string, error) {
	claims := jwt.MapClaims{
		"id":       payload.ID,
		"email":    payload.Email,
		"verified": payload.Verified,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSignature(signature, secret string) (Payload, error) {
	token, err := jwt.Parse(signature, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Payload{}, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, errors.New("invalid token claims")
	}
	payload := Payload{}
	if id, ok := claims["id"].(string); ok {
		payload.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		payload.Email = email
	}
	if verified, ok := claims["verified"].(bool); ok {
		payload.Verified = verified
	}
	if payload.ID == "" {
		return Payload{}, errors.New("token carries no principal id")
	}
	return payload, nil
}
