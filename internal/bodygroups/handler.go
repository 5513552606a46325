package bodygroups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bkovacic/liftlog/internal/telemetry/tracing"
	"github.com/bkovacic/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

type bodyGroupsRepo interface {
	List(ctx context.Context) ([]BodyGroup, error)
}

type Handler struct {
	repo bodyGroupsRepo
}

func NewHandler(repo bodyGroupsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodygroups.list")
	defer span.End()

	bodyGroups, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list body groups: %s", err)
		pkg.WriteJSONError(w, "failed to fetch body groups", http.StatusBadGateway)
		return
	}

	bodyGroupsJson, err := json.Marshal(bodyGroups)
	if err != nil {
		log.Errorf("failed to marshal body groups: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bodyGroupsJson, http.StatusOK)
}
