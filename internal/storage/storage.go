package storage

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the credential persistence operations the auth service
// depends on. The service never touches SQL directly.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// FindByEmailOrUsername matches the value against the email column first
	// and falls back to the username column. It never matches across fields.
	FindByEmailOrUsername(ctx context.Context, value string) (models.User, error)
}

// WorkoutStore captures workout persistence operations.
type WorkoutStore interface {
	CreateWorkout(ctx context.Context, workout models.Workout) (models.Workout, error)
	FindWorkoutByID(ctx context.Context, id int64) (models.Workout, error)
	ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error)
}
