package models

import "time"

// ExerciseType classifies an exercise within a workout.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "STRENGTH"
	ExerciseCardio      ExerciseType = "CARDIO"
	ExerciseFlexibility ExerciseType = "FLEXIBILITY"
	ExerciseBalance     ExerciseType = "BALANCE"
)

// Workout is a titled collection of exercises owned by a single user.
type Workout struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"-"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	Exercises []Exercise `json:"exercises"`
}

// Exercise is a single entry in a workout.
type Exercise struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	Sets int          `json:"sets"`
	Type ExerciseType `json:"type,omitempty"`
}
