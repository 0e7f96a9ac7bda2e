package auth

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/logger"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
)

// PortalClaims represents the JWT claims issued by the investor portal IdP
type PortalClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AccountID string `json:"account_id,omitempty"`
}

type AuthClient struct {
	ClientID string
	JWKSURL  string
	Issuer   string
	Audience string
	jwks     *keyfunc.JWKS
}

func NewAuthClient() *AuthClient {
	client := &AuthClient{
		ClientID: os.Getenv("AUTH_CLIENT_ID"),
		JWKSURL:  os.Getenv("AUTH_JWKS_ENDPOINT"),
		Issuer:   os.Getenv("AUTH_ISSUER"),
		Audience: os.Getenv("AUTH_AUDIENCE"),
	}

	if err := client.initializeJWKS(); err != nil {
		logger.Log.Error("Failed to initialize JWKS", zap.Error(err))
	}

	return client
}

func (ac *AuthClient) initializeJWKS() error {
	if ac.JWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_ENDPOINT not set")
	}

	jwks, err := keyfunc.Get(ac.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}

	ac.jwks = jwks

	logger.Log.Info("JWKS initialized successfully",
		zap.String("jwks_url", ac.JWKSURL),
		zap.String("issuer", ac.Issuer),
	)

	return nil
}

// EnsureValidAPIKeyOrToken is a middleware that checks for either a valid API key or JWT token
func (ac *AuthClient) EnsureValidAPIKeyOrToken(services CommonServicesInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		// First check for API key in header
		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" {
			key, err := services.GetAPIKeyService().ValidateAPIKey(c.Request.Context(), apiKey)
			if err != nil {
				logger.Log.Debug("API key validation failed", zap.Error(err))
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				c.Abort()
				return
			}

			c.Set("accountID", key.AccountID.String())
			c.Set("apiKeyLevel", key.AccessLevel)
			c.Set("authType", constants.AuthTypeAPIKey)
			c.Next()
			return
		}

		// If no API key, check for JWT token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authentication provided"})
			c.Abort()
			return
		}

		claims, err := ac.validateToken(authHeader)
		if err != nil {
			logger.Log.Info("JWT token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", c.GetHeader("X-Correlation-ID")),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		accountID := claims.AccountID
		if accountID == "" {
			accountID = c.GetHeader("X-Account-ID")
		}
		if accountID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No account ID provided"})
			c.Abort()
			return
		}

		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Set("accountID", accountID)
		c.Set("authType", constants.AuthTypeJWT)
		c.Next()
	}
}

// validateToken parses and validates a bearer token against the JWKS
func (ac *AuthClient) validateToken(authHeader string) (*PortalClaims, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if ac.jwks == nil {
		return nil, fmt.Errorf("JWKS not initialized")
	}

	parseOpts := []jwt.ParserOption{}
	if ac.Issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(ac.Issuer))
	}
	if ac.Audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(ac.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &PortalClaims{}, ac.jwks.Keyfunc, parseOpts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PortalClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RequireRoles is a middleware that checks if the caller has one of the required roles
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKeyLevel := c.GetString("apiKeyLevel")
		authType := c.GetString("authType")
		userRole := c.GetString("userRole")

		// For API key auth, check access level
		if authType == constants.AuthTypeAPIKey {
			if apiKeyLevel != constants.AccessLevelAdmin {
				logger.Log.Debug("Insufficient API key access level")
				c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient API key access level"})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		logger.Log.Debug("Insufficient role",
			zap.String("user_role", userRole),
			zap.Strings("required_roles", roles),
		)
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// RequestLog represents a structured log entry for an HTTP request
type RequestLog struct {
	Method    string    `json:"method"`
	Path      string    `json:"path,omitempty"`
	Query     string    `json:"query,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	ClientIP  string    `json:"client_ip"`
	AccountID string    `json:"account_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// shouldSkipLogging determines if request logging should be skipped for a given path
func shouldSkipLogging(path string) bool {
	// Skip logging for health check endpoints
	if path == "/healthz" || path == "/readyz" {
		return true
	}
	return false
}

// getRequestBody safely reads and returns the request body
func getRequestBody(c *gin.Context) ([]byte, error) {
	var bodyBytes []byte
	if c.Request.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		// Restore the request body for subsequent middleware/handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}
	return bodyBytes, nil
}

// LogRequest is a middleware that logs request details
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldSkipLogging(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		body, err := getRequestBody(c)
		if err != nil {
			logger.Log.Warn("Failed to read request body", zap.Error(err))
		}

		entry := RequestLog{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     c.Request.URL.RawQuery,
			UserAgent: c.Request.UserAgent(),
			ClientIP:  c.ClientIP(),
			AccountID: c.GetString("accountID"),
			Timestamp: start,
		}

		fields := []zap.Field{
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.String("client_ip", entry.ClientIP),
		}
		if entry.Query != "" {
			fields = append(fields, zap.String("query", entry.Query))
		}
		if len(body) > 0 && len(body) <= 4096 {
			fields = append(fields, zap.ByteString("body", body))
		}

		logger.Log.Info("Request", fields...)

		c.Next()

		logger.Log.Info("Response",
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
