package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Upload tokens authorize a single presigned PUT against the local storage
// backend. The S3 backend signs its own URLs; this covers the mock/local
// case with the same capability semantics.

type UploadClaims struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type,omitempty"`
	jwt.RegisteredClaims
}

type UploadTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewUploadTokenSigner(secret []byte, ttl time.Duration) *UploadTokenSigner {
	return &UploadTokenSigner{secret: secret, ttl: ttl}
}

func (s *UploadTokenSigner) Sign(key, contentType string) (string, error) {
	now := time.Now()
	claims := UploadClaims{
		Key:         key,
		ContentType: contentType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the object key and content type the token was issued for.
func (s *UploadTokenSigner) Verify(token string) (string, string, error) {
	claims := &UploadClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !parsed.Valid || claims.Key == "" {
		return "", "", errors.New("invalid upload token")
	}
	return claims.Key, claims.ContentType, nil
}
