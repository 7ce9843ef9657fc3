package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	ContextCaller    = "caller"
	ContextRequestID = "requestID"
)

// AuthMiddleware verifies an HS256 bearer token issued by the identity
// service and stores the CallerContext built from its sub, role and name
// claims.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be a bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token claims are invalid.")
			c.Abort()
			return
		}

		caller, ok := callerFromClaims(claims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Token must carry sub and role.")
			c.Abort()
			return
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}

func callerFromClaims(claims jwt.MapClaims) (identity.CallerContext, bool) {
	var id uint64

	switch sub := claims["sub"].(type) {
	case float64:
		if sub <= 0 || sub != float64(uint64(sub)) {
			return identity.CallerContext{}, false
		}
		id = uint64(sub)
	case string:
		parsed, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || parsed == 0 {
			return identity.CallerContext{}, false
		}
		id = parsed
	default:
		return identity.CallerContext{}, false
	}

	role, _ := claims["role"].(string)
	r := identity.Role(strings.ToLower(role))
	if !r.IsValid() {
		return identity.CallerContext{}, false
	}

	name, _ := claims["name"].(string)

	return identity.CallerContext{ID: uint(id), Role: r, Name: name}, true
}

// Caller returns the identity stored by AuthMiddleware.
func Caller(c *gin.Context) (identity.CallerContext, bool) {
	v, ok := c.Get(ContextCaller)
	if !ok {
		return identity.CallerContext{}, false
	}
	caller, ok := v.(identity.CallerContext)
	return caller, ok
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := Caller(c)
		if !ok {
			httperr.Unauthorized(c, "unauthenticated", "Authentication required.")
			c.Abort()
			return
		}

		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden_role", "Your role cannot access this resource.")
		c.Abort()
	}
}
