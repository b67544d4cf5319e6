package utils

import (
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// GeneratePrincipalJWT mints a bearer token proving the given principal
// reference. The token id (jti) is what the revocation set tracks.
func GeneratePrincipalJWT(principal, tokenID, secret string, expTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": principal,
		"jti": tokenID,
		"exp": time.Now().Add(time.Duration(expTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}

	return tokenString, nil
}

// ParsePrincipalJWT verifies the token signature and expiry and returns
// the proven principal reference and the token id.
func ParsePrincipalJWT(tokenString, secret string) (principal string, tokenID string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	principal, _ = claims["sub"].(string)
	tokenID, _ = claims["jti"].(string)
	if principal == "" {
		return "", "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return principal, tokenID, nil
}

func HashAPIKey(apiKey string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckAPIKeyHash(apiKey, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey))
	return err == nil
}
