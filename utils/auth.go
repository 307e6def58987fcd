// utils/auth.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Principal roles carried by realtime tokens.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateRealtimeToken mints a short-lived token the browser presents when
// opening its websocket. The hub checks topic joins against the role and
// subject baked in here, so clients cannot snoop on other orders by guessing
// topic names.
func GenerateRealtimeToken(role string, subject uuid.UUID) (string, error) {
	expiryHours := 1 // default
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject.String(),
		"role": role,
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// ParseRealtimeToken validates a realtime token and returns its role and
// subject id.
func ParseRealtimeToken(tokenString string) (string, uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", uuid.Nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", uuid.Nil, errors.New("invalid token claims")
	}

	role, _ := claims["role"].(string)
	if role != RoleAdmin && role != RoleCustomer {
		return "", uuid.Nil, errors.New("invalid token role")
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return "", uuid.Nil, errors.New("invalid token subject")
	}

	return role, id, nil
}
