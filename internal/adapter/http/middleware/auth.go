package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"
	"gig_escrow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

var (
	ErrJWTSecretMissing = errors.New("jwt secret not configured")
	ErrSubjectRequired  = errors.New("subject claim required")

	errUnauthorized       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
	errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "invalid credentials", http.StatusUnauthorized)
)

// ParseSubject validates an HS256 token and returns its subject (the user's email).
func ParseSubject(token, secret string) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", ErrJWTSecretMissing
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrSubjectRequired
	}
	return claims.Subject, nil
}

func bearerToken(authz string) (string, bool) {
	parts := strings.Fields(authz)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// Auth resolves the bearer token to an Identity through the directory and stores
// it on the gin context. Requests without a resolvable caller stop with 401.
func Auth(secret string, directory interfaces.IDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := strings.TrimSpace(c.GetHeader("Authorization"))
		if authz == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		token, ok := bearerToken(authz)
		if !ok {
			c.AbortWithStatusJSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
			return
		}
		email, err := ParseSubject(token, secret)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
			return
		}

		user, err := directory.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			log.Printf("[auth][middleware] directory lookup failed email=%s err=%v", email, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if user.ID == "" {
			log.Printf("[auth][middleware] unknown subject email=%s", email)
			c.AbortWithStatusJSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
			return
		}

		SetIdentity(c, entities.IdentityFromUser(user))
		c.Next()
	}
}

// SetIdentity stores the resolved caller on the request context.
func SetIdentity(c *gin.Context, id entities.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the caller stored by Auth.
func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	id, ok := v.(entities.Identity)
	if !ok || id.UserID == "" {
		return entities.Identity{}, false
	}
	return id, true
}
