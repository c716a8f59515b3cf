package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
)

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	JWTSecret string

	// AllowDevHeaders accepts X-User-ID / X-User-Role headers in place of
	// a token. Never enabled in production.
	AllowDevHeaders bool
}

// Auth validates the bearer token issued by the user directory and puts
// user_id and user_role into the request context.
func Auth(cfg *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AllowDevHeaders {
			if userID := c.GetHeader("X-User-ID"); userID != "" {
				c.Set("user_id", userID)
				c.Set("user_role", c.GetHeader("X-User-Role"))
				c.Next()
				return
			}
		}

		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "missing token")
			return
		}

		claims, err := parseClaims(tokenString, cfg.JWTSecret)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", string(claims.Role))
		c.Next()
	}
}

// Claims are the token claims the core relies on
type Claims struct {
	UserID string
	Role   domain.Role
}

func parseClaims(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID: userID,
		Role:   domain.Role(role),
	}, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   "unauthorized",
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}
