// apps/go-solver/internal/httpserver/auth.go
//
// Bearer-token auth for the benchmark routes.
//   - POST /auth/token exchanges admin credentials (bcrypt hash from config)
//     for an HS256 JWT and also sets it as a cookie.
//   - requireAuth accepts the token from the Authorization header or cookie.
//   - SignToken is shared with the `token` CLI command.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// CookieName carries the token for browser clients.
const CookieName = "solver_token"

// AuthConfig configures token issuance and checking.
type AuthConfig struct {
	Secret    string
	Expiry    time.Duration
	AdminUser string
	AdminHash string // bcrypt; empty disables POST /auth/token
	Secure    bool   // mark the cookie Secure
}

// ctxSubjectKey is the context key for the authenticated subject.
type ctxSubjectKey struct{}

// Subject returns the token subject attached by requireAuth.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(ctxSubjectKey{}).(string)
	return s
}

// SignToken creates an HS256 JWT for subject that expires after ttl.
func SignToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("auth: empty signing secret")
	}
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// parseToken validates tokenStr and returns its subject.
func parseToken(secret, tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("auth: invalid token")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("auth: token has no subject")
	}
	return sub, nil
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

// requireAuth enforces a valid JWT and injects its subject into the request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			sub, err := parseToken(s.d.Auth.Secret, tokenStr)
			if err != nil {
				log.Debug().Err(err).Msg("rejected token")
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type tokenReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleToken checks admin credentials and issues a token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.d.Auth.AdminHash == "" {
		writeError(w, http.StatusServiceUnavailable, "auth_disabled")
		return
	}
	var body tokenReq
	if err := decode(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if strings.TrimSpace(body.Username) != s.d.Auth.AdminUser || !checkPassword(s.d.Auth.AdminHash, body.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	tok, exp, err := SignToken(s.d.Auth.Secret, s.d.Auth.AdminUser, s.d.Auth.Expiry)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	sameSite := http.SameSiteLaxMode
	if s.d.Auth.Secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.d.Auth.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	writeJSON(w, http.StatusOK, tokenRes{Token: tok, ExpiresAt: exp.UTC()})
}
