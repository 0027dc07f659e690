// internal/app/features/tags/handler.go
package tags

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	uierrors "github.com/dalemusser/storemap/internal/app/features/errors"
	storestore "github.com/dalemusser/storemap/internal/app/store/stores"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
	"github.com/dalemusser/storemap/internal/domain/models"
)

type pageData struct {
	viewdata.Base
	Tag    string // empty on /tags
	Tags   []models.TagCount
	Stores []models.Store
}

type Handler struct {
	Stores     *storestore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
	SiteName   string
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger, siteName string) *Handler {
	return &Handler{
		Stores:     storestore.New(db),
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
		SiteName:   siteName,
	}
}

// ServeTags renders the tag directory with per-tag counts, plus the
// stores carrying the selected tag. With no tag selected, every store
// that has at least one tag is shown. The tag aggregation and the store
// query run concurrently.
// GET /tags , GET /tags/{tag}
func (h *Handler) ServeTags(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tag := chi.URLParam(r, "tag")

	var (
		counts []models.TagCount
		stores []models.Store
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = h.Stores.TagCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stores, err = h.Stores.ByTag(gctx, tag)
		return err
	})
	if err := g.Wait(); err != nil {
		h.ErrLog.LogServerError(w, r, "loading tags failed", err, "A database error occurred.", "/stores")
		return
	}

	title := "Tags"
	if tag != "" {
		title = tag
	}

	data := pageData{
		Base:   viewdata.New(w, r, h.SessionMgr, h.SiteName, title),
		Tag:    tag,
		Tags:   counts,
		Stores: stores,
	}
	templates.Render(w, r, "tag_list", data)
}
