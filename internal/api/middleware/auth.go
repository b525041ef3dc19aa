package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	principalCtx        = "principal" // Key to store the verified principal in context
	userIDCtx           = "user_id"   // External id, read by the request logger
)

// ErrNoPrincipal is returned when a handler behind PrincipalAuth finds no principal.
var ErrNoPrincipal = errors.New("principal not found in context")

// principalClaims are the identity provider claims we read. Only sub is required.
type principalClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PrincipalAuth verifies bearer tokens issued by the identity provider and
// stores the resulting models.Principal in the request context. Tokens are
// HS256 with a shared secret, or RS256 when a public key file is configured.
func PrincipalAuth(cfg config.AuthConfig, log logrus.FieldLogger) (gin.HandlerFunc, error) {
	keyFunc, methods, err := keyFuncFor(cfg)
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.SplitN(authHeader, " ", 2)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") || strings.TrimSpace(headerParts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims := &principalClaims{}
		token, err := parser.ParseWithClaims(strings.TrimSpace(headerParts[1]), claims, keyFunc)
		if err != nil || !token.Valid {
			log.WithError(err).Debug("rejected bearer token")
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
			return
		}

		c.Set(principalCtx, models.Principal{
			ExternalID: claims.Subject,
			Email:      claims.Email,
			Name:       claims.Name,
		})
		c.Set(userIDCtx, claims.Subject)
		c.Next()
	}, nil
}

func keyFuncFor(cfg config.AuthConfig) (jwt.Keyfunc, []string, error) {
	if cfg.PublicKeyFile != "" {
		pemBytes, err := os.ReadFile(cfg.PublicKeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("reading auth public key: %w", err)
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing auth public key: %w", err)
		}
		return func(*jwt.Token) (any, error) { return key, nil },
			[]string{jwt.SigningMethodRS256.Alg()}, nil
	}
	if cfg.JWTSecret == "" {
		return nil, nil, errors.New("auth: no jwt secret or public key configured")
	}
	secret := []byte(cfg.JWTSecret)
	return func(*jwt.Token) (any, error) { return secret, nil },
		[]string{jwt.SigningMethodHS256.Alg()}, nil
}

// GetPrincipalFromContext returns the principal set by PrincipalAuth.
func GetPrincipalFromContext(c *gin.Context) (models.Principal, error) {
	v, exists := c.Get(principalCtx)
	if !exists {
		return models.Principal{}, ErrNoPrincipal
	}
	p, ok := v.(models.Principal)
	if !ok || p.ExternalID == "" {
		return models.Principal{}, ErrNoPrincipal
	}
	return p, nil
}

// SetPrincipal stores p as the acting principal. Used by tests and by
// trusted in-process callers.
func SetPrincipal(c *gin.Context, p models.Principal) {
	c.Set(principalCtx, p)
	c.Set(userIDCtx, p.ExternalID)
}
