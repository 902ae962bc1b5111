package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dmchat/internal/app/db"
)

var (
	// ErrDuplicateName indicates that the requested user name is already taken.
	// The losing side of a concurrent registration race gets this, never a
	// silent overwrite.
	ErrDuplicateName = errors.New("user name already taken")

	// ErrNotFound indicates that no user matched the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidInput indicates a name, hash, or image reference that fails validation.
	ErrInvalidInput = errors.New("invalid user input")
)

// Names are 1+ alphanumeric characters, nothing else.
var nameFormat = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Store is the persistence interface for user accounts.
//
// GetByCredentials is the only lookup usable for login: it requires an exact
// match on both name and password hash, so this interface exposes no
// name-only path that could be used for username enumeration.
type Store interface {
	Create(ctx context.Context, name, passwordHash, imageRef string) (User, error)
	GetByCredentials(ctx context.Context, name, passwordHash string) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateImage(ctx context.Context, id ID, imageRef string) (User, error)
}

type pgStore struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by the given PostgreSQL pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

const createUserQuery = `
INSERT INTO users (name, password_hash, image_ref)
VALUES ($1, $2, $3)
RETURNING id`

func (s *pgStore) Create(ctx context.Context, name, passwordHash, imageRef string) (User, error) {
	if !nameFormat.MatchString(name) || passwordHash == "" || imageRef == "" {
		return User{}, ErrInvalidInput
	}

	u := User{
		Name:         name,
		PasswordHash: passwordHash,
		ImageRef:     imageRef,
	}

	err := s.pool.QueryRow(ctx, createUserQuery, name, passwordHash, imageRef).Scan((*string)(&u.ID))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, ErrDuplicateName
		}
		if db.IsCheckViolation(err) {
			return User{}, ErrInvalidInput
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

const getByCredentialsQuery = `
SELECT id, name, password_hash, image_ref
FROM users
WHERE name = $1 AND password_hash = $2`

func (s *pgStore) GetByCredentials(ctx context.Context, name, passwordHash string) (User, error) {
	var u User
	err := s.pool.QueryRow(ctx, getByCredentialsQuery, name, passwordHash).
		Scan((*string)(&u.ID), &u.Name, &u.PasswordHash, &u.ImageRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by credentials: %w", err)
	}

	return u, nil
}

const getByIDQuery = `
SELECT id, name, password_hash, image_ref
FROM users
WHERE id = $1`

func (s *pgStore) GetByID(ctx context.Context, id ID) (User, error) {
	var u User
	err := s.pool.QueryRow(ctx, getByIDQuery, string(id)).
		Scan((*string)(&u.ID), &u.Name, &u.PasswordHash, &u.ImageRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || db.IsInvalidTextRepresentation(err) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return u, nil
}

const listUsersQuery = `
SELECT id, name, image_ref
FROM users
ORDER BY created_at`

// List returns every registered user. There is no pagination; the expected
// scale of this system keeps the full collection small.
func (s *pgStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.pool.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan((*string)(&u.ID), &u.Name, &u.ImageRef); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

const updateImageQuery = `
UPDATE users
SET image_ref = $2
WHERE id = $1
RETURNING id, name, password_hash, image_ref`

func (s *pgStore) UpdateImage(ctx context.Context, id ID, imageRef string) (User, error) {
	if imageRef == "" {
		return User{}, ErrInvalidInput
	}

	var u User
	err := s.pool.QueryRow(ctx, updateImageQuery, string(id), imageRef).
		Scan((*string)(&u.ID), &u.Name, &u.PasswordHash, &u.ImageRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || db.IsInvalidTextRepresentation(err) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("update user image: %w", err)
	}

	return u, nil
}
