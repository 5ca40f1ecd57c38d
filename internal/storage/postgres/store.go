package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/fittrack/fittrack-be/internal/models"
	"github.com/fittrack/fittrack-be/internal/storage"
	"github.com/fittrack/fittrack-be/internal/storage/postgres/migrations"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.WorkoutStore = (*Store)(nil)
)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and workouts.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore runs pending migrations and opens a connection pool.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	if err := runMigrations(ctx, databaseURL); err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// runMigrations applies the embedded goose migrations over the pgx stdlib
// driver. The connection is only held for the duration of the migration run.
func runMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// CreateUser inserts a new user row. A unique violation on username or email
// maps to storage.ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// ExistsByEmail reports whether a user with the email is registered.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`, email)
}

// ExistsByUsername reports whether a user with the username is registered.
func (s *Store) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`, username)
}

func (s *Store) exists(ctx context.Context, query, value string) (bool, error) {
	var found bool
	if err := s.pool.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	return found, nil
}

// FindByEmailOrUsername fetches the user matching the value as an email
// first, falling back to a username match. The two lookups stay separate so
// a value never matches the wrong column.
func (s *Store) FindByEmailOrUsername(ctx context.Context, value string) (models.User, error) {
	user, err := s.findBy(ctx, "email", value)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, err
	}
	return s.findBy(ctx, "username", value)
}

func (s *Store) findBy(ctx context.Context, column, value string) (models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE %s = $1;
	`, column)
	row := s.pool.QueryRow(ctx, query, value)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
