// internal/app/features/api/heart.go
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/jsonresp"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
)

// heartResponse reports the state after a toggle: whether this store is
// now hearted, and the full heart list for client-side bookkeeping.
type heartResponse struct {
	Hearted bool     `json:"hearted"`
	Hearts  []string `json:"hearts"`
}

// HandleHeart toggles the signed-in user's heart on a store. Toggling
// twice lands back where you started.
// POST /api/stores/{id}/heart
func (h *Handler) HandleHeart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	su, ok := auth.CurrentUser(r)
	if !ok {
		jsonresp.Error(w, http.StatusUnauthorized, "sign in to heart stores")
		return
	}
	userID, err := su.ObjectID()
	if err != nil {
		jsonresp.Error(w, http.StatusUnauthorized, "sign in to heart stores")
		return
	}

	storeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonresp.Error(w, http.StatusBadRequest, "invalid store id")
		return
	}

	if _, err := h.Stores.GetByID(ctx, storeID); err != nil {
		if err == mongo.ErrNoDocuments {
			jsonresp.Error(w, http.StatusNotFound, "store not found")
			return
		}
		h.Log.Error("loading store failed", zap.Error(err))
		jsonresp.Error(w, http.StatusInternalServerError, "query failed")
		return
	}

	u, err := h.Users.ToggleHeart(ctx, userID, storeID)
	if err != nil {
		h.Log.Error("toggling heart failed",
			zap.String("user", userID.Hex()),
			zap.String("store", storeID.Hex()),
			zap.Error(err))
		jsonresp.Error(w, http.StatusInternalServerError, "toggle failed")
		return
	}

	resp := heartResponse{
		Hearted: u.HasHeart(storeID),
		Hearts:  make([]string, 0, len(u.Hearts)),
	}
	for _, id := range u.Hearts {
		resp.Hearts = append(resp.Hearts, id.Hex())
	}
	jsonresp.OK(w, resp)
}
