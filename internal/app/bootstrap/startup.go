// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. Storemap
// only needs the photo upload directory to exist.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := os.MkdirAll(appCfg.UploadsDir, 0o755); err != nil {
		return fmt.Errorf("create uploads directory %s: %w", appCfg.UploadsDir, err)
	}
	logger.Info("uploads directory ready", zap.String("dir", appCfg.UploadsDir))
	return nil
}
