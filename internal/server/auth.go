package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thenoetrevino/crewdesk/internal/config"
)

type contextKey string

const roleContextKey contextKey = "role"

var (
	errMissingToken = errors.New("missing api key or bearer token")
	errRoleDenied   = errors.New("role not allowed")
)

// AuthMiddleware checks the HS256 token carried by every API request and
// the role claim inside it.
type AuthMiddleware struct {
	secret []byte
	roles  []string
}

// NewAuthMiddleware returns nil when auth is disabled
func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	if !cfg.Enabled() {
		return nil
	}
	return &AuthMiddleware{secret: []byte(cfg.JWTSecret), roles: cfg.AllowedRoles}
}

// Auth wraps next. Health checks pass through untouched.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || isHealthPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		role, err := m.verify(tokenFrom(r))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized", Details: err.Error()})
			return
		}

		ctx := context.WithValue(r.Context(), roleContextKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verify parses the token and returns its role claim
func (m *AuthMiddleware) verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errMissingToken
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	role, _ := claims["role"].(string)
	if !slices.Contains(m.roles, role) {
		return "", fmt.Errorf("%w: %q", errRoleDenied, role)
	}
	return role, nil
}

// tokenFrom reads the Bearer header, then the apikey header, then the apikey
// query parameter which browsers need for websockets.
func tokenFrom(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if key := r.Header.Get("apikey"); key != "" {
		return key
	}
	return r.URL.Query().Get("apikey")
}

func isHealthPath(path string) bool {
	return path == "/api/health" || path == "/api/v1/health"
}

// RoleFrom returns the role claim of an authenticated request
func RoleFrom(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}

// SignToken issues a token with the given role. Used by `crewdesk token` and tests.
func SignToken(secret, role string, claims jwt.MapClaims) (string, error) {
	all := jwt.MapClaims{"role": role}
	for k, v := range claims {
		all[k] = v
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, all)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
