// internal/app/features/reviews/handler.go
package reviews

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/storemap/internal/app/features/errors"
	reviewstore "github.com/dalemusser/storemap/internal/app/store/reviews"
	storestore "github.com/dalemusser/storemap/internal/app/store/stores"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// Reviews are plain text; all markup is stripped.
var sanitizer = bluemonday.StrictPolicy()

type Handler struct {
	Reviews    *reviewstore.Store
	Stores     *storestore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Reviews:    reviewstore.New(db),
		Stores:     storestore.New(db),
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// HandleAdd records a review and sends the reviewer back to the store page.
// POST /reviews/{storeID}
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	authorID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "session user missing or invalid", nil, "Please sign in again.", "/login")
		return
	}

	storeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "storeID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "That store ID isn't valid.", "/stores")
		return
	}

	st, err := h.Stores.GetByID(ctx, storeID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That store doesn't exist.", "/stores")
			return
		}
		h.ErrLog.LogServerError(w, r, "loading store failed", err, "A database error occurred.", "/stores")
		return
	}

	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid form data.", "/store/"+st.Slug)
		return
	}

	text := strings.TrimSpace(sanitizer.Sanitize(r.PostFormValue("text")))
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))

	_, err = h.Reviews.Add(ctx, models.Review{
		AuthorID: authorID,
		StoreID:  storeID,
		Text:     text,
		Rating:   rating,
	})
	if err != nil {
		switch err {
		case reviewstore.ErrMissingText, reviewstore.ErrBadRating:
			h.SessionMgr.Flash(w, r, auth.FlashError, "A review needs some text and a rating from 1 to 5.")
			http.Redirect(w, r, "/store/"+st.Slug, http.StatusSeeOther)
		default:
			h.ErrLog.LogServerError(w, r, "saving review failed", err, "A database error occurred.", "/store/"+st.Slug)
		}
		return
	}

	h.Log.Info("review added",
		zap.String("store", st.Slug),
		zap.String("author", authorID.Hex()))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "Review saved!")
	http.Redirect(w, r, "/store/"+st.Slug, http.StatusSeeOther)
}
