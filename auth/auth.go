// Package auth is a thin bearer-token collaborator: it verifies JWTs on
// protected routes and surfaces failures as typed errors for the uniform
// error-rendering layer. It owns no identity model beyond the token subject.
package auth

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/templateapi/response"
	"github.com/skillsenselab/templateapi/server/middleware"
)

// Config holds bearer-token verification settings.
type Config struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Secret  string `yaml:"secret" mapstructure:"secret"`
	Issuer  string `yaml:"issuer" mapstructure:"issuer"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Enabled && c.Secret == "" {
		return fmt.Errorf("auth.secret is required when auth is enabled")
	}
	return nil
}

// contextKeySubject is the gin context key for the verified token subject.
const contextKeySubject = "auth_subject"

// Error is the typed failure this collaborator raises; it always classifies
// as UnAuthorized and keeps the verification failure on the cause chain for
// operators.
type Error struct {
	Reason string
	Cause  error
}

func (e *Error) Error() string { return "authentication required" }

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Category() response.ErrorCode { return response.CodeUnauthorized }

func (e *Error) TechnicalDescription() string { return e.Reason }

// RequireAuth verifies the Authorization bearer token and stores its subject
// in the request context. Failures are rendered through the uniform error
// envelope and abort the request.
func RequireAuth(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, &Error{Reason: "Authorization header missing"})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abort(c, &Error{Reason: "Authorization header is not a bearer token"})
			return
		}

		subject, err := verify(cfg, token)
		if err != nil {
			abort(c, &Error{Reason: "JWT token missing, expired, or invalid", Cause: err})
			return
		}

		c.Set(contextKeySubject, subject)
		c.Next()
	}
}

// Subject returns the verified token subject, or "" on unauthenticated
// requests.
func Subject(c *gin.Context) string {
	return c.GetString(contextKeySubject)
}

func abort(c *gin.Context, err *Error) {
	response.Error(c, middleware.GetTraceID(c), err)
	c.Abort()
}

func verify(cfg Config, tokenString string) (string, error) {
	opts := []gojwt.ParserOption{gojwt.WithValidMethods([]string{"HS256"})}
	if cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(cfg.Issuer))
	}

	claims := &gojwt.RegisteredClaims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(*gojwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("auth: parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("auth: invalid token")
	}
	return claims.Subject, nil
}
