package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driver/myhttp/handle"

	"github.com/golang-jwt/jwt"
)

type AuthMiddleware struct {
	accessSecret string
}

func NewAuthMiddleware(accessSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		accessSecret: accessSecret,
	}
}

// Wrap verifies the session token and stashes the caller identity in
// request headers for the handlers. The browser client sends the token as
// an httpOnly cookie; API clients may use a bearer header instead.
func (am *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			handle.JsonErrorWithCode(w, http.StatusUnauthorized, fmt.Errorf("missing session token"))
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(am.accessSecret), nil
		})
		if err != nil {
			handle.JsonErrorWithCode(w, http.StatusUnauthorized, fmt.Errorf("failed to parse session token"))
			return
		}

		if !token.Valid {
			handle.JsonErrorWithCode(w, http.StatusUnauthorized, fmt.Errorf("invalid session token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			handle.JsonErrorWithCode(w, http.StatusUnauthorized, fmt.Errorf("invalid claims"))
			return
		}

		userId, ok := claims["user_id"].(string)
		if !ok {
			handle.JsonErrorWithCode(w, http.StatusUnauthorized, fmt.Errorf("user id not found in token"))
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			handle.JsonErrorWithCode(w, http.StatusUnauthorized, fmt.Errorf("role not found in token"))
			return
		}

		r.Header.Del("X-Name")
		r.Header.Del("X-Email")
		r.Header.Set("X-UserId", userId)
		r.Header.Set("X-Role", role)
		if name, ok := claims["name"].(string); ok {
			r.Header.Set("X-Name", name)
		}
		if email, ok := claims["email"].(string); ok {
			r.Header.Set("X-Email", email)
		}

		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
