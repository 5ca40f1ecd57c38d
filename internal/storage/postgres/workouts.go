package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fittrack/fittrack-be/internal/models"
	"github.com/fittrack/fittrack-be/internal/storage"
)

// CreateWorkout inserts a workout and its exercises in one transaction.
func (s *Store) CreateWorkout(ctx context.Context, workout models.Workout) (models.Workout, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Workout{}, fmt.Errorf("begin workout insert: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertWorkout = `
		INSERT INTO workouts (user_id, title)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`
	created := workout
	if err := tx.QueryRow(ctx, insertWorkout, workout.UserID, workout.Title).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		return models.Workout{}, fmt.Errorf("insert workout: %w", err)
	}

	const insertExercise = `
		INSERT INTO exercises (workout_id, name, sets, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	for i := range created.Exercises {
		ex := &created.Exercises[i]
		if err := tx.QueryRow(ctx, insertExercise, created.ID, ex.Name, ex.Sets, string(ex.Type)).
			Scan(&ex.ID); err != nil {
			return models.Workout{}, fmt.Errorf("insert exercise: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Workout{}, fmt.Errorf("commit workout insert: %w", err)
	}
	return created, nil
}

// FindWorkoutByID fetches one workout with its exercises.
func (s *Store) FindWorkoutByID(ctx context.Context, id int64) (models.Workout, error) {
	const query = `
		SELECT id, user_id, title, created_at
		FROM workouts
		WHERE id = $1;
	`
	var workout models.Workout
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&workout.ID, &workout.UserID, &workout.Title, &workout.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Workout{}, storage.ErrNotFound
		}
		return models.Workout{}, err
	}

	exercises, err := s.exercisesFor(ctx, []int64{workout.ID})
	if err != nil {
		return models.Workout{}, err
	}
	workout.Exercises = exercises[workout.ID]
	return workout, nil
}

// ListWorkoutsByUser fetches all workouts owned by the user, newest first.
func (s *Store) ListWorkoutsByUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	const query = `
		SELECT id, user_id, title, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	var ids []int64
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, nil
	}

	exercises, err := s.exercisesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = exercises[workouts[i].ID]
	}
	return workouts, nil
}

// exercisesFor loads exercises for a set of workouts in a single query,
// keyed by workout id.
func (s *Store) exercisesFor(ctx context.Context, workoutIDs []int64) (map[int64][]models.Exercise, error) {
	const query = `
		SELECT id, workout_id, name, sets, type
		FROM exercises
		WHERE workout_id = ANY($1)
		ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]models.Exercise)
	for rows.Next() {
		var ex models.Exercise
		var workoutID int64
		var typ string
		if err := rows.Scan(&ex.ID, &workoutID, &ex.Name, &ex.Sets, &typ); err != nil {
			return nil, err
		}
		ex.Type = models.ExerciseType(typ)
		out[workoutID] = append(out[workoutID], ex)
	}
	return out, rows.Err()
}
