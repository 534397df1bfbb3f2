package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvasanth/equipscan/internal/api/response"
)

// Auth validates the Bearer token against a configured bcrypt hash. An empty
// hash disables authentication entirely.
type Auth struct {
	apiKeyHash string
}

// NewAuth creates a new Auth middleware.
func NewAuth(apiKeyHash string) *Auth {
	return &Auth{apiKeyHash: apiKeyHash}
}

// Enabled reports whether authentication is configured.
func (a *Auth) Enabled() bool {
	return a.apiKeyHash != ""
}

// Authenticate validates the Bearer token by bcrypt comparison against the
// configured hash.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		rawKey := extractBearerToken(r)
		if rawKey == "" {
			response.Error(w, http.StatusUnauthorized,
				"INVALID_TOKEN", "Missing or invalid Authorization header", nil)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(a.apiKeyHash), []byte(rawKey)) != nil {
			response.Error(w, http.StatusUnauthorized,
				"INVALID_TOKEN", "Invalid API key", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
