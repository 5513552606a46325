package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bkovacic/liftlog/internal/telemetry/tracing"
	"github.com/bkovacic/liftlog/internal/templates"
	"github.com/bkovacic/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=schedule_test

type workoutsLister interface {
	ListEntries(ctx context.Context, from, to string) ([]Entry, error)
	ListDailies(ctx context.Context, from, to string) ([]DailySummary, error)
}

type workoutsService interface {
	Instantiate(ctx context.Context, params InstantiateParams) (*InstantiateResult, error)
	CreateEntry(ctx context.Context, params CreateEntryParams) (*Entry, error)
	UpdateEntry(ctx context.Context, id string, patch EntryPatch) (*UpdateResult, error)
	Delete(ctx context.Context, params DeleteParams) (int, error)
	Move(ctx context.Context, fromDate, toDate string, isSwap bool) (int, error)
	SetDailyCompleted(ctx context.Context, date string, completed bool) error
}

type Handler struct {
	repo    workoutsLister
	service workoutsService
}

func NewHandler(repo workoutsLister, service workoutsService) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	entries, err := h.repo.ListEntries(ctx, startDate, endDate)
	if err != nil {
		log.Errorf("list workouts [%s - %s]: %s", startDate, endDate, err)
		pkg.WriteJSONError(w, "failed to fetch workouts", http.StatusBadGateway)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

type instantiateRequest struct {
	TemplateID      string                       `json:"templateId"`
	Date            string                       `json:"date"`
	CustomExercises []templates.TemplateExercise `json:"customExercises"`
}

type instantiateResponse struct {
	Success        bool    `json:"success"`
	Workouts       []Entry `json:"workouts"`
	DailyWorkoutID string  `json:"dailyWorkoutId"`
	Message        string  `json:"message"`
}

func (h *Handler) HandleInstantiate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instantiate")
	defer span.End()

	var req instantiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("instantiate workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.TemplateID == "" || req.Date == "" {
		pkg.WriteJSONError(w, "template ID and date are required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Instantiate(ctx, InstantiateParams{
		TemplateID:      req.TemplateID,
		Date:            req.Date,
		CustomExercises: req.CustomExercises,
	})
	if err != nil && result == nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			pkg.WriteJSONError(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("instantiate template %s on %s: %s", req.TemplateID, req.Date, err)
		pkg.WriteJSONError(w, "failed to schedule workout", http.StatusBadGateway)
		return
	}
	if err != nil {
		// the created prefix stays, report what went through
		log.Errorf("instantiate template %s on %s, partial failure: %s", req.TemplateID, req.Date, err)
	}

	respJson, err := json.Marshal(instantiateResponse{
		Success:        true,
		Workouts:       result.Workouts,
		DailyWorkoutID: result.DailyID,
		Message:        fmt.Sprintf("created %d workouts", len(result.Workouts)),
	})
	if err != nil {
		log.Errorf("failed to marshal instantiate response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

type createWorkoutRequest struct {
	TemplateID         string  `json:"templateId"`
	TemplateExerciseID string  `json:"templateExerciseId"`
	ExerciseID         string  `json:"exerciseId"`
	ExerciseName       string  `json:"exerciseName"`
	Date               string  `json:"date"`
	TotalSets          int     `json:"totalSets"`
	TotalReps          int     `json:"totalReps"`
	MaxWeight          float64 `json:"maxWeight"`
}

type createWorkoutResponse struct {
	Success   bool   `json:"success"`
	WorkoutID string `json:"workoutId"`
	Message   string `json:"message"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var req createWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.ExerciseID == "" || req.ExerciseName == "" || req.Date == "" {
		pkg.WriteJSONError(w, "exercise ID, exercise name and date are required", http.StatusBadRequest)
		return
	}

	entry, err := h.service.CreateEntry(ctx, CreateEntryParams{
		TemplateID:         req.TemplateID,
		TemplateExerciseID: req.TemplateExerciseID,
		ExerciseID:         req.ExerciseID,
		ExerciseName:       req.ExerciseName,
		Date:               req.Date,
		Sets:               req.TotalSets,
		Reps:               req.TotalReps,
		MaxWeight:          req.MaxWeight,
	})
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			pkg.WriteJSONError(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("create workout for exercise %s on %s: %s", req.ExerciseID, req.Date, err)
		pkg.WriteJSONError(w, "failed to create workout", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(createWorkoutResponse{
		Success:   true,
		WorkoutID: entry.ID,
		Message:   "workout created",
	})
	if err != nil {
		log.Errorf("failed to marshal create workout response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

type updateWorkoutRequest struct {
	PageID    string   `json:"pageId"`
	TotalSets *int     `json:"totalSets"`
	TotalReps *int     `json:"totalReps"`
	MaxWeight *float64 `json:"maxWeight"`
	Completed *bool    `json:"completed"`
}

type updateWorkoutResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	NewPersonalBest bool   `json:"newPersonalBest"`
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	var req updateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.PageID == "" {
		pkg.WriteJSONError(w, "page ID is required", http.StatusBadRequest)
		return
	}

	patch := EntryPatch{
		Sets:      req.TotalSets,
		Reps:      req.TotalReps,
		MaxWeight: req.MaxWeight,
		Completed: req.Completed,
	}
	if patch.Empty() {
		pkg.WriteJSONError(w, "at least one field to update is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateEntry(ctx, req.PageID, patch)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			pkg.WriteJSONError(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout %s: %s", req.PageID, err)
		pkg.WriteJSONError(w, "failed to update workout", http.StatusBadGateway)
		return
	}

	message := "workout updated"
	if result.NewPersonalBest {
		message = "workout updated, new personal best"
	}
	respJson, err := json.Marshal(updateWorkoutResponse{
		Success:         true,
		Message:         message,
		NewPersonalBest: result.NewPersonalBest,
	})
	if err != nil {
		log.Errorf("failed to marshal update workout response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

type deleteWorkoutRequest struct {
	PageID     string `json:"pageId"`
	Date       string `json:"date"`
	ExerciseID string `json:"exerciseId"`
}

type deleteWorkoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	var req deleteWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("delete workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.PageID == "" && (req.Date == "" || req.ExerciseID == "") {
		pkg.WriteJSONError(w, "page ID or date with exercise ID is required", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.Delete(ctx, DeleteParams{
		PageID:     req.PageID,
		Date:       req.Date,
		ExerciseID: req.ExerciseID,
	})
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			pkg.WriteJSONError(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout (page %q, date %q, exercise %q): %s",
			req.PageID, req.Date, req.ExerciseID, err)
		pkg.WriteJSONError(w, "failed to delete workout", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(deleteWorkoutResponse{
		Success: true,
		Message: fmt.Sprintf("deleted %d workouts", deleted),
	})
	if err != nil {
		log.Errorf("failed to marshal delete workout response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

type moveWorkoutsRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	IsSwap   bool   `json:"isSwap"`
}

type moveWorkoutsResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	MovedWorkouts int    `json:"movedWorkouts"`
}

func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.move")
	defer span.End()

	var req moveWorkoutsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("move workouts, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.FromDate == "" || req.ToDate == "" {
		pkg.WriteJSONError(w, "from and to dates are required", http.StatusBadRequest)
		return
	}
	if req.FromDate == req.ToDate {
		pkg.WriteJSONError(w, "from and to dates must differ", http.StatusBadRequest)
		return
	}

	moved, err := h.service.Move(ctx, req.FromDate, req.ToDate, req.IsSwap)
	if err != nil {
		if moved == 0 {
			log.Errorf("move workouts %s -> %s (swap=%t): %s", req.FromDate, req.ToDate, req.IsSwap, err)
			pkg.WriteJSONError(w, "failed to move workouts", http.StatusBadGateway)
			return
		}
		log.Errorf("move workouts %s -> %s (swap=%t), partial failure: %s",
			req.FromDate, req.ToDate, req.IsSwap, err)
	}

	respJson, err := json.Marshal(moveWorkoutsResponse{
		Success:       true,
		Message:       fmt.Sprintf("moved %d workouts", moved),
		MovedWorkouts: moved,
	})
	if err != nil {
		log.Errorf("failed to marshal move workouts response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleListDailies(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailyworkouts.list")
	defer span.End()

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	dailies, err := h.repo.ListDailies(ctx, startDate, endDate)
	if err != nil {
		log.Errorf("list daily workouts [%s - %s]: %s", startDate, endDate, err)
		pkg.WriteJSONError(w, "failed to fetch daily workouts", http.StatusBadGateway)
		return
	}

	dailiesJson, err := json.Marshal(dailies)
	if err != nil {
		log.Errorf("failed to marshal daily workouts: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dailiesJson, http.StatusOK)
}

type updateDailyRequest struct {
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

type updateDailyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) HandleUpdateDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailyworkouts.update")
	defer span.End()

	var req updateDailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update daily workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Date == "" || req.Completed == nil {
		pkg.WriteJSONError(w, "date and completed flag are required", http.StatusBadRequest)
		return
	}

	if err := h.service.SetDailyCompleted(ctx, req.Date, *req.Completed); err != nil {
		if errors.Is(err, ErrSummaryNotFound) {
			pkg.WriteJSONError(w, "no daily workout found for date", http.StatusNotFound)
			return
		}
		log.Errorf("update daily workout for %s: %s", req.Date, err)
		pkg.WriteJSONError(w, "failed to update daily workout", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(updateDailyResponse{
		Success: true,
		Message: "daily workout updated",
	})
	if err != nil {
		log.Errorf("failed to marshal update daily response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
