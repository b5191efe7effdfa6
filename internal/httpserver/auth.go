// internal/httpserver/auth.go
//
// Player identity and accounts.
//   - withPlayer resolves every game request to a player id: the account id for a
//     valid JWT (Authorization: Bearer or auth cookie), otherwise an anonymous
//     uuid cookie that is created on first visit.
//   - /auth/signup, /auth/login carry anonymous progress over to the account
//     (store.Claim) so a guest's history is not lost on sign-in.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/landmark/internal/store"
	"github.com/robalobadob/landmark/internal/users"
)

const anonCookieName = "landmark_anon"

// authUser is placed into request context when a valid token is present.
type authUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type (
	ctxUserKey   struct{}
	ctxPlayerKey struct{}
)

func userFrom(ctx context.Context) *authUser {
	u, _ := ctx.Value(ctxUserKey{}).(*authUser)
	return u
}

// playerFrom returns the id set by withPlayer.
func playerFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxPlayerKey{}).(string)
	return id
}

// withPlayer decorates requests with the player id (and account, when signed in).
// It never 401s; guests play under their anonymous cookie.
func (s *Server) withPlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		player := ""
		if u := s.authenticate(r); u != nil {
			ctx = context.WithValue(ctx, ctxUserKey{}, u)
			player = u.ID
		} else {
			player = s.ensureAnonID(w, r)
		}
		ctx = context.WithValue(ctx, ctxPlayerKey{}, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate returns the signed-in user for r, or nil.
func (s *Server) authenticate(r *http.Request) *authUser {
	if s.deps.Users == nil {
		return nil
	}
	tok := s.bearerOrCookie(r)
	if tok == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return nil
	}
	// Ensure user still exists
	u, err := s.deps.Users.ByID(r.Context(), id)
	if err != nil {
		return nil
	}
	return &authUser{ID: u.ID, Username: u.Username}
}

// ensureAnonID returns the anonymous player id cookie, setting a fresh one if
// missing or malformed.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, s.cookie(anonCookieName, id, time.Now().Add(180*24*time.Hour)))
	return id
}

// anonID reads the anonymous cookie without creating one.
func anonID(r *http.Request) string {
	c, err := r.Cookie(anonCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// ------------------------------- routes ------------------------------------

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) mountAuthRoutes() {
	s.r.Route("/auth", func(r chi.Router) {
		r.Use(s.requireAccounts)
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/me", s.handleMe)
	})
}

// requireAccounts answers 503 when no users store is configured.
func (s *Server) requireAccounts(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Users == nil {
			writeError(w, http.StatusServiceUnavailable, "accounts_disabled")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleSignup creates a user, signs a JWT, sets the auth cookie and claims anon progress.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := decode(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.deps.Users.Create(r.Context(), body.Username, body.Password)
	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username taken")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.signIn(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username, "createdAt": u.CreatedAt})
}

// handleLogin authenticates the user, sets the cookie and claims anon progress.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := decode(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.deps.Users.Authenticate(r.Context(), body.Username, body.Password)
	switch {
	case errors.Is(err, users.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	case err != nil:
		log.Error().Err(err).Msg("login")
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}
	if !s.signIn(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username})
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, u *users.User) bool {
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		log.Error().Err(err).Msg("sign jwt")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return false
	}
	http.SetCookie(w, s.cookie(s.cfg.CookieName, tok, exp))
	store.Claim(r.Context(), s.deps.KV, anonID(r), u.ID)
	return true
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	c := s.cookie(s.cfg.CookieName, "", time.Time{})
	c.MaxAge = -1
	http.SetCookie(w, c)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u := s.authenticate(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ------------------------------ JWT & cookies ------------------------------

// signJWT creates an HS256 JWT with id/username and the configured expiry.
func (s *Server) signJWT(id, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.TokenTTL())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// cookie builds an HttpOnly cookie with production-aware security attributes.
func (s *Server) cookie(name, value string, exp time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		Expires:  exp,
	}
}

// bearerOrCookie extracts a bearer token from the Authorization header or auth cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}
