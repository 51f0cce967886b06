package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const scopeContextKey = "laundry.scope"

var (
	ErrMissingBearerToken = errors.New("authorization header must carry a bearer token")
	ErrInvalidToken       = errors.New("token is invalid")
)

// Claims is the identity carried by access tokens. Subject is the actor id;
// branch_id and partner_id bind branch-scoped roles and logistics agents.
type Claims struct {
	Role      string `json:"role"`
	BranchID  string `json:"branch_id,omitempty"`
	PartnerID string `json:"partner_id,omitempty"`
	jwt.RegisteredClaims
}

// Identity turns HS256 bearer tokens into an access.Scope.
type Identity struct {
	secret []byte
	parser *jwt.Parser
}

func NewIdentity(secret string) (*Identity, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Identity{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Middleware resolves the caller's scope once per request and stores it on
// the echo context. Requests without a usable token stop here with 401.
func (i *Identity) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrMissingBearerToken.Error())
			}

			scope, err := i.Scope(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error()).SetInternal(err)
			}

			c.Set(scopeContextKey, scope)
			return next(c)
		}
	}
}

// Scope validates the token and derives the scope from its claims.
func (i *Identity) Scope(token string) (access.Scope, error) {
	claims := &Claims{}
	parsed, err := i.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil {
		return access.Scope{}, err
	}
	if !parsed.Valid {
		return access.Scope{}, ErrInvalidToken
	}
	return claims.scope()
}

// Issue signs claims for the given scope. Used by the token command and tests.
func (i *Identity) Issue(scope access.Scope, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: scope.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   scope.ActorID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if !scope.BranchID().IsZero() {
		claims.BranchID = scope.BranchID().String()
	}
	if !scope.PartnerID().IsZero() {
		claims.PartnerID = scope.PartnerID().String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (c *Claims) scope() (access.Scope, error) {
	role, err := access.ParseRole(c.Role)
	if err != nil {
		return access.Scope{}, err
	}
	actorID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return access.Scope{}, err
	}
	branchID, err := optionalUUID(c.BranchID)
	if err != nil {
		return access.Scope{}, err
	}
	partnerID, err := optionalUUID(c.PartnerID)
	if err != nil {
		return access.Scope{}, err
	}
	return access.NewScope(role, actorID, branchID, partnerID)
}

func optionalUUID(s string) (kernel.UUID, error) {
	if s == "" {
		return kernel.UUID{}, nil
	}
	return kernel.UUIDFromString(s)
}

// scopeFrom returns the scope set by Identity. A missing scope comes back as
// the zero value, which every workflow operation rejects as Forbidden.
func scopeFrom(c echo.Context) access.Scope {
	scope, _ := c.Get(scopeContextKey).(access.Scope)
	return scope
}
