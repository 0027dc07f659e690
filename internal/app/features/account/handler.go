// internal/app/features/account/handler.go
package account

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/storemap/internal/app/features/errors"
	userstore "github.com/dalemusser/storemap/internal/app/store/users"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/mailer"
)

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Mailer     *mailer.Mailer
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
	SiteName   string
	BaseURL    string // e.g. https://storemap.app, for reset links
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, m *mailer.Mailer, errLog *uierrors.ErrorLogger, logger *zap.Logger, siteName, baseURL string) *Handler {
	return &Handler{
		Users:      userstore.New(db),
		SessionMgr: sessionMgr,
		Mailer:     m,
		ErrLog:     errLog,
		Log:        logger,
		SiteName:   siteName,
		BaseURL:    baseURL,
	}
}
