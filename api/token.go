package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ContextClaims is the gin context key holding the caller's token claims.
const ContextClaims = "claims"

// ErrInvalidToken is returned for tokens that fail validation.
var ErrInvalidToken = errors.New("api: invalid token")

// Tokenizer issues and checks HS256 tokens for the protected routes.
type Tokenizer struct {
	secret []byte
	issuer string
}

// NewTokenizer returns a Tokenizer signing with secret as issuer.
func NewTokenizer(secret, issuer string) *Tokenizer {
	return &Tokenizer{secret: []byte(secret), issuer: issuer}
}

// Generate signs a token for subject that expires after ttl.
func (t *Tokenizer) Generate(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": t.issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Decode validates token and returns its claims.
func (t *Tokenizer) Decode(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, t.signingKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(t.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	return claims, nil
}

func (t *Tokenizer) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}

	return t.secret, nil
}

// Authorize rejects requests without a valid "Bearer" token and stores the
// claims under ContextClaims.
func Authorize(t *Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := t.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
