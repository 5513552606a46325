package bodygroups

import (
	"context"
	"fmt"

	"github.com/bkovacic/liftlog/internal/notion"
	"github.com/bkovacic/liftlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour         = 60 * 60
	nameCacheExpire = oneHour * 1 // body group names basically never change
)

type store interface {
	QueryAll(ctx context.Context, databaseID string, q notion.Query) ([]notion.Page, error)
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
}

type Repo struct {
	store      store
	databaseID string
	nameCache  *freecache.Cache
}

func NewRepo(store store, databaseID string) *Repo {
	megabyte := 1024 * 1024
	return &Repo{
		store:      store,
		databaseID: databaseID,
		nameCache:  freecache.NewCache(1 * megabyte),
	}
}

func (r *Repo) List(ctx context.Context) (_ []BodyGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodygroups.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pages, err := r.store.QueryAll(ctx, r.databaseID, notion.Query{})
	if err != nil {
		return nil, fmt.Errorf("query body groups: %w", err)
	}

	bodyGroups := make([]BodyGroup, 0, len(pages))
	for _, page := range pages {
		bodyGroups = append(bodyGroups, pageToBodyGroup(page))
	}
	return bodyGroups, nil
}

// Name resolves a body group name by page id, best effort: upstream failures
// are logged and yield an empty name rather than failing the caller.
func (r *Repo) Name(ctx context.Context, id string) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodygroups.name")
	defer span.End()

	if name, err := r.nameCache.Get([]byte(id)); err == nil {
		log.Tracef("found body group name for %s in cache", id)
		return string(name)
	}

	page, err := r.store.GetPage(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch body group %s: %s", id, err)
		return ""
	}

	name := pageToBodyGroup(*page).Name
	if err := r.nameCache.Set([]byte(id), []byte(name), nameCacheExpire); err != nil {
		log.Errorf("failed to cache body group name for %s: %s", id, err)
	}
	return name
}
