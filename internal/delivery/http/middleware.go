package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"meal-admin/internal/service"
)

const actorCtx = "actor"

// authn validates the bearer token and stores the acting identity in the
// request context. Token issuance lives in the identity service; this layer
// only verifies the shared-secret HMAC signature and the sub/role claims.
func (h *Handler) authn(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		newErrorResponse(c, http.StatusUnauthorized, "missing authorization header")
		return
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		newErrorResponse(c, http.StatusUnauthorized, "malformed authorization header")
		return
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		newErrorResponse(c, http.StatusUnauthorized, "invalid token")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "invalid token claims")
		return
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		newErrorResponse(c, http.StatusUnauthorized, "token missing sub or role")
		return
	}

	c.Set(actorCtx, service.Actor{ID: sub, Role: role})
	c.Next()
}

func (h *Handler) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor(c).Role != role {
			newErrorResponse(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}

func actor(c *gin.Context) service.Actor {
	v, ok := c.Get(actorCtx)
	if !ok {
		return service.Actor{}
	}
	a, _ := v.(service.Actor)
	return a
}
