package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("credenciales inválidas")

// Servicio de autenticación del admin: login con email+password
// (hash bcrypt configurado por entorno) y sesión vía JWT en cookie.
type AuthService struct {
	secret     []byte
	adminEmail string
	adminHash  string
	tokenTTL   time.Duration
}

func NewAuthService(secret, adminEmail, adminHash string) *AuthService {
	return &AuthService{
		secret:     []byte(secret),
		adminEmail: adminEmail,
		adminHash:  adminHash,
		tokenTTL:   24 * time.Hour,
	}
}

// Login valida las credenciales y emite el token firmado.
func (a *AuthService) Login(email, password string) (string, error) {
	if email != a.adminEmail || a.adminHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.adminHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ValidateToken verifica firma y expiración; devuelve el email del admin.
func (a *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}
