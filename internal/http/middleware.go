package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-server/internal/auth"
	"todo-server/internal/domain"
	"todo-server/internal/repository"
)

// identityKey is the gin context key holding the resolved caller.
const identityKey = "identity"

const bearerPrefix = "Bearer "

// RequireIdentity verifies the bearer token on each request and
// attaches the resolved identity to the context. The token is looked
// up in the x-user header first, then Authorization; both must carry
// the exact "Bearer <token>" shape. Verified claims are re-resolved
// against the user store so tokens for deleted or changed accounts
// stop working before their expiry.
func RequireIdentity(tokens *auth.TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.Request)
		if raw == "" {
			abortUnauthorized(c, "no access token")
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			abortUnauthorized(c, "invalid access token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil || user.Email != claims.Email {
			abortUnauthorized(c, "user not found")
			return
		}

		c.Set(identityKey, domain.Identity{ID: user.ID, Email: user.Email})
		c.Next()
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("x-user")
	if header == "" {
		header = r.Header.Get("Authorization")
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return ""
	}
	return token
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// currentIdentity returns the identity attached by RequireIdentity.
func currentIdentity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
