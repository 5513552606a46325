package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bkovacic/liftlog/internal/telemetry/tracing"
	"github.com/bkovacic/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, id string) (*Template, error)
	Create(ctx context.Context, template Template) (*Template, error)
}

type Handler struct {
	repo templatesRepo
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	templates, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list templates: %s", err)
		pkg.WriteJSONError(w, "failed to fetch workout templates", http.StatusBadGateway)
		return
	}

	templatesJson, err := json.Marshal(templates)
	if err != nil {
		log.Errorf("failed to marshal templates: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templatesJson, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
	defer span.End()

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Tracef("create template, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if template.Name == "" {
		pkg.WriteJSONError(w, "template name is required", http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(ctx, template)
	if err != nil {
		if errors.Is(err, ErrReadOnlyTemplates) {
			pkg.WriteJSONError(w, "templates are managed in the record store and cannot be created here", http.StatusBadRequest)
			return
		}
		log.Errorf("create template: %s", err)
		pkg.WriteJSONError(w, "failed to create template", http.StatusBadGateway)
		return
	}

	createdJson, err := json.Marshal(created)
	if err != nil {
		log.Errorf("failed to marshal created template: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, createdJson, http.StatusCreated)
}

type templateBodyGroupsResponse struct {
	TemplateID   string   `json:"templateId"`
	TemplateName string   `json:"templateName"`
	BodyGroupIDs []string `json:"bodyGroupIds"`
}

func (h *Handler) HandleBodyGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.bodygroups")
	defer span.End()

	templateID := r.URL.Query().Get("templateId")
	if templateID == "" {
		pkg.WriteJSONError(w, "template ID is required", http.StatusBadRequest)
		return
	}

	template, err := h.repo.Get(ctx, templateID)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			pkg.WriteJSONError(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("get template %s: %s", templateID, err)
		pkg.WriteJSONError(w, "failed to fetch template", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(templateBodyGroupsResponse{
		TemplateID:   template.ID,
		TemplateName: template.Name,
		BodyGroupIDs: template.BodyGroupIDs,
	})
	if err != nil {
		log.Errorf("failed to marshal template body groups: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
