// internal/users/users.go
//
// Account storage for players who sign in.
// Responsibilities:
//   - Validate usernames/passwords at signup.
//   - Hash passwords with bcrypt and verify them at login.
//   - CRUD on the users table (case-insensitive unique usernames).
//
// Signed-in players use their account id as player id, so their progress
// follows them across devices. Anonymous players never touch this table.

package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username taken")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

// Validate enforces basic username/password rules.
func Validate(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return errors.New("username must be 3–24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return errors.New("password must be 8–100 chars")
	}
	return nil
}

func hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Create validates input, checks uniqueness, hashes the password and inserts the user.
func (s *Store) Create(ctx context.Context, username, pw string) (*User, error) {
	username = normalizeUsername(username)
	if err := Validate(username, pw); err != nil {
		return nil, err
	}
	if _, err := s.ByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	h, err := hashPassword(pw)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: h,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	q, args, err := builder.Insert("users").
		Columns("id", "username", "password_hash", "created_at").
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt.Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate returns the user when username and password match.
func (s *Store) Authenticate(ctx context.Context, username, pw string) (*User, error) {
	u, err := s.ByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(u.PasswordHash, pw) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Store) ByUsername(ctx context.Context, username string) (*User, error) {
	return s.find(ctx, sq.Expr("lower(username) = lower(?)", username))
}

func (s *Store) ByID(ctx context.Context, id string) (*User, error) {
	return s.find(ctx, sq.Eq{"id": id})
}

func (s *Store) find(ctx context.Context, where sq.Sqlizer) (*User, error) {
	q, args, err := builder.Select("id", "username", "password_hash", "created_at").
		From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	var (
		u       User
		created string
	)
	err = s.db.QueryRowContext(ctx, q, args...).Scan(&u.ID, &u.Username, &u.PasswordHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &u, nil
}
