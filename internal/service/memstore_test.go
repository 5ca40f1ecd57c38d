package service

import (
	"context"
	"time"

	"github.com/fittrack/fittrack-be/internal/models"
	"github.com/fittrack/fittrack-be/internal/storage"
)

// memStore is an in-memory storage implementation for service tests.
type memStore struct {
	users    []models.User
	workouts []models.Workout
	nextID   int64

	emailChecks    []string
	usernameChecks []string

	createUserErr error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if m.createUserErr != nil {
		return models.User{}, m.createUserErr
	}
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users = append(m.users, user)
	return user, nil
}

func (m *memStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.emailChecks = append(m.emailChecks, email)
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.usernameChecks = append(m.usernameChecks, username)
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) FindByEmailOrUsername(_ context.Context, value string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == value {
			return u, nil
		}
	}
	for _, u := range m.users {
		if u.Username == value {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (m *memStore) CreateWorkout(_ context.Context, workout models.Workout) (models.Workout, error) {
	workout.ID = m.nextID
	m.nextID++
	workout.CreatedAt = time.Now()
	for i := range workout.Exercises {
		workout.Exercises[i].ID = m.nextID
		m.nextID++
	}
	m.workouts = append(m.workouts, workout)
	return workout, nil
}

func (m *memStore) FindWorkoutByID(_ context.Context, id int64) (models.Workout, error) {
	for _, w := range m.workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Workout{}, storage.ErrNotFound
}

func (m *memStore) ListWorkoutsByUser(_ context.Context, userID int64) ([]models.Workout, error) {
	var out []models.Workout
	for i := len(m.workouts) - 1; i >= 0; i-- {
		if m.workouts[i].UserID == userID {
			out = append(out, m.workouts[i])
		}
	}
	return out, nil
}
