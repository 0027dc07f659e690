// internal/app/features/stores/handler.go
package stores

import (
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/storemap/internal/app/features/errors"
	reviewstore "github.com/dalemusser/storemap/internal/app/store/reviews"
	storestore "github.com/dalemusser/storemap/internal/app/store/stores"
	userstore "github.com/dalemusser/storemap/internal/app/store/users"
	"github.com/dalemusser/storemap/internal/app/system/auth"
)

// sanitizer strips dangerous markup from user-supplied descriptions
// before they are stored.
var sanitizer = bluemonday.UGCPolicy()

type Handler struct {
	Stores     *storestore.Store
	Reviews    *reviewstore.Store
	Users      *userstore.Store
	Photos     *PhotoStore
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
	SiteName   string
}

func NewHandler(db *mongo.Database, photos *PhotoStore, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger, siteName string) *Handler {
	return &Handler{
		Stores:     storestore.New(db),
		Reviews:    reviewstore.New(db),
		Users:      userstore.New(db),
		Photos:     photos,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
		SiteName:   siteName,
	}
}
