package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-be/internal/http/respond"
	"github.com/fittrack/fittrack-be/internal/middleware"
	"github.com/fittrack/fittrack-be/internal/models"
	"github.com/fittrack/fittrack-be/internal/models/dto"
	"github.com/fittrack/fittrack-be/internal/service"
)

// WorkoutHandler owns the workout endpoints. Every route requires an
// authenticated identity.
type WorkoutHandler struct {
	workouts *service.WorkoutService
	logger   zerolog.Logger
}

// NewWorkoutHandler constructs the handler.
func NewWorkoutHandler(workouts *service.WorkoutService, logger zerolog.Logger) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, logger: logger}
}

// Register attaches workout routes to the mux behind RequireAuth.
func (h *WorkoutHandler) Register(mux *http.ServeMux) {
	mux.Handle("POST /workouts", middleware.RequireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /workouts", middleware.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /workouts/{id}", middleware.RequireAuth(http.HandlerFunc(h.handleGet)))
}

func (h *WorkoutHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req dto.WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateStruct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.workouts.Create(r.Context(), identity.UserID, toWorkout(req))
	if err != nil {
		h.logger.Error().Err(err).Msg("create workout failed")
		respond.Error(w, http.StatusInternalServerError, "failed to create workout")
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToWorkoutResponse(created))
}

func (h *WorkoutHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	workout, err := h.workouts.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			respond.Error(w, http.StatusNotFound, "workout not found")
			return
		}
		h.logger.Error().Err(err).Msg("load workout failed")
		respond.Error(w, http.StatusInternalServerError, "failed to load workout")
		return
	}

	respond.JSON(w, http.StatusOK, dto.ToWorkoutResponse(workout))
}

func (h *WorkoutHandler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	workouts, err := h.workouts.ListForUser(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("list workouts failed")
		respond.Error(w, http.StatusInternalServerError, "failed to list workouts")
		return
	}

	out := make([]dto.WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		out = append(out, dto.ToWorkoutResponse(workout))
	}
	respond.JSON(w, http.StatusOK, out)
}

func toWorkout(req dto.WorkoutRequest) models.Workout {
	exercises := make([]models.Exercise, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		exercises = append(exercises, models.Exercise{
			Name: ex.Name,
			Sets: ex.Sets,
			Type: ex.Type,
		})
	}
	return models.Workout{Title: req.Title, Exercises: exercises}
}
