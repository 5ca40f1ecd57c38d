package dto

import (
	"time"

	"github.com/fittrack/fittrack-be/internal/models"
)

type ExerciseRequest struct {
	Name string              `json:"name" validate:"required"`
	Sets int                 `json:"sets" validate:"min=1"`
	Type models.ExerciseType `json:"type" validate:"omitempty,oneof=STRENGTH CARDIO FLEXIBILITY BALANCE"`
}

type WorkoutRequest struct {
	Title     string            `json:"title" validate:"required"`
	Exercises []ExerciseRequest `json:"exercises" validate:"dive"`
}

type WorkoutResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	CreatedAt time.Time         `json:"createdAt"`
	Exercises []models.Exercise `json:"exercises"`
}

// ToWorkoutResponse maps a domain workout to its API shape.
func ToWorkoutResponse(w models.Workout) WorkoutResponse {
	exercises := w.Exercises
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	return WorkoutResponse{
		ID:        w.ID,
		Title:     w.Title,
		CreatedAt: w.CreatedAt,
		Exercises: exercises,
	}
}
