package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bkovacic/liftlog/internal/telemetry/tracing"
	"github.com/bkovacic/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	ListAll(ctx context.Context) ([]Exercise, error)
	ListByBodyGroups(ctx context.Context, bodyGroupIDs []string) ([]ExerciseDetails, error)
	Best(ctx context.Context, exerciseID string) (float64, error)
	SetBest(ctx context.Context, exerciseID string, best float64) error
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := h.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteJSONError(w, "failed to fetch exercises", http.StatusBadGateway)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

type byBodyGroupsRequest struct {
	BodyGroupIDs []string `json:"bodyGroupIds"`
}

func (h *Handler) HandleListByBodyGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.bybodygroups")
	defer span.End()

	var req byBodyGroupsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("exercises by body groups, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if len(req.BodyGroupIDs) == 0 {
		pkg.WriteJSONError(w, "body group IDs array is required", http.StatusBadRequest)
		return
	}

	exercises, err := h.repo.ListByBodyGroups(ctx, req.BodyGroupIDs)
	if err != nil {
		log.Errorf("list exercises by body groups: %s", err)
		pkg.WriteJSONError(w, "failed to fetch exercises", http.StatusBadGateway)
		return
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

type bestsRequest struct {
	ExerciseIDs []string `json:"exerciseIds"`
}

func (h *Handler) HandleBests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.bests")
	defer span.End()

	var req bestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("exercise bests, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.ExerciseIDs == nil {
		pkg.WriteJSONError(w, "exercise IDs array is required", http.StatusBadRequest)
		return
	}

	// per-exercise failures degrade to 0 instead of failing the whole request
	bests := make(map[string]float64, len(req.ExerciseIDs))
	for _, exerciseID := range req.ExerciseIDs {
		best, err := h.repo.Best(ctx, exerciseID)
		if err != nil {
			log.Errorf("failed to fetch best for exercise %s: %s", exerciseID, err)
			bests[exerciseID] = 0
			continue
		}
		bests[exerciseID] = best
	}

	bestsJson, err := json.Marshal(bests)
	if err != nil {
		log.Errorf("failed to marshal exercise bests: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bestsJson, http.StatusOK)
}

type updateBestRequest struct {
	ExerciseID string   `json:"exerciseId"`
	NewBest    *float64 `json:"newBest"`
}

type updateBestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) HandleUpdateBest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.updatebest")
	defer span.End()

	var req updateBestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update exercise best, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.ExerciseID == "" || req.NewBest == nil {
		pkg.WriteJSONError(w, "exercise ID and new best value are required", http.StatusBadRequest)
		return
	}

	if err := h.repo.SetBest(ctx, req.ExerciseID, *req.NewBest); err != nil {
		log.Errorf("update exercise %s best: %s", req.ExerciseID, err)
		pkg.WriteJSONError(w, "failed to update personal best", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(updateBestResponse{
		Success: true,
		Message: "personal best updated",
	})
	if err != nil {
		log.Errorf("failed to marshal update best response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}
