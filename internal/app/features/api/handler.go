// internal/app/features/api/handler.go
package api

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	storestore "github.com/dalemusser/storemap/internal/app/store/stores"
	userstore "github.com/dalemusser/storemap/internal/app/store/users"
)

type Handler struct {
	Stores *storestore.Store
	Users  *userstore.Store
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Stores: storestore.New(db),
		Users:  userstore.New(db),
		Log:    logger,
	}
}
