package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSubject is returned when a token's subject is not an identity id.
var ErrInvalidSubject = errors.New("token subject is not a valid identity id")

// TokenSettings holds what is needed to sign and verify access tokens.
type TokenSettings struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// Claims are the access token claims. Subject carries the identity id.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// IdentityID parses the subject claim.
func (c *Claims) IdentityID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidSubject
	}
	return id, nil
}

// GenerateJWT signs an HS256 token for the given identity.
func GenerateJWT(settings TokenSettings, identityID int64, username, email, role, fullName string, now time.Time) (string, error) {
	claims := Claims{
		Username: username,
		Email:    email,
		Role:     role,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    settings.Issuer,
			Subject:   strconv.FormatInt(identityID, 10),
			Audience:  jwt.ClaimStrings{settings.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(settings.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(settings.Secret))
}

// ParseAndValidateJWT parses a token string, validating its signature, expiry,
// issuer and audience.
func ParseAndValidateJWT(tokenString string, settings TokenSettings) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if settings.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(settings.Issuer))
	}
	if settings.Audience != "" {
		opts = append(opts, jwt.WithAudience(settings.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(settings.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
