package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/fittrack-be/internal/models"
	"github.com/fittrack/fittrack-be/internal/storage"
)

// ErrWorkoutNotFound is returned when a workout does not exist or belongs to
// a different user. The two cases look identical so workout ids cannot be
// probed across accounts.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutService owns workout reads and writes scoped to their owner.
type WorkoutService struct {
	workouts storage.WorkoutStore
}

// NewWorkoutService constructs the service.
func NewWorkoutService(workouts storage.WorkoutStore) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// Create persists a workout for the user and returns it with generated ids.
func (s *WorkoutService) Create(ctx context.Context, userID int64, workout models.Workout) (models.Workout, error) {
	workout.UserID = userID
	created, err := s.workouts.CreateWorkout(ctx, workout)
	if err != nil {
		return models.Workout{}, fmt.Errorf("create workout: %w", err)
	}
	return created, nil
}

// GetByID fetches one of the user's workouts.
func (s *WorkoutService) GetByID(ctx context.Context, userID, id int64) (models.Workout, error) {
	workout, err := s.workouts.FindWorkoutByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Workout{}, ErrWorkoutNotFound
		}
		return models.Workout{}, fmt.Errorf("load workout: %w", err)
	}
	if workout.UserID != userID {
		return models.Workout{}, ErrWorkoutNotFound
	}
	return workout, nil
}

// ListForUser fetches all of the user's workouts, newest first.
func (s *WorkoutService) ListForUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	workouts, err := s.workouts.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}
