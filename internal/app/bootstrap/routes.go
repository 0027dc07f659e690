// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	accountfeature "github.com/dalemusser/storemap/internal/app/features/account"
	apifeature "github.com/dalemusser/storemap/internal/app/features/api"
	errorsfeature "github.com/dalemusser/storemap/internal/app/features/errors"
	healthfeature "github.com/dalemusser/storemap/internal/app/features/health"
	reviewsfeature "github.com/dalemusser/storemap/internal/app/features/reviews"
	storesfeature "github.com/dalemusser/storemap/internal/app/features/stores"
	tagsfeature "github.com/dalemusser/storemap/internal/app/features/tags"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/mailer"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// Storemap initializes the template engine, applies session middleware,
// and mounts feature routers for the store directory, tags, reviews,
// accounts, and the JSON API. All HTML routes sit behind CSRF
// protection; the JSON API is mounted outside it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	db := deps.StoremapMongoDatabase

	photos := storesfeature.NewPhotoStore(appCfg.UploadsDir, appCfg.UploadsURL)
	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	storesHandler := storesfeature.NewHandler(db, photos, sessionMgr, errLog, logger, appCfg.SiteName)
	tagsHandler := tagsfeature.NewHandler(db, sessionMgr, errLog, logger, appCfg.SiteName)
	reviewsHandler := reviewsfeature.NewHandler(db, sessionMgr, errLog, logger)
	accountHandler := accountfeature.NewHandler(db, sessionMgr, mail, errLog, logger, appCfg.SiteName, appCfg.BaseURL)
	apiHandler := apifeature.NewHandler(db, logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.StoremapMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded store photos
	r.Handle(appCfg.UploadsURL+"/*", fileserver.Handler(appCfg.UploadsURL, appCfg.UploadsDir))

	// JSON API: search, proximity lookup, heart toggle. Clients call these
	// with fetch, so they stay outside the CSRF-protected HTML group.
	r.Mount("/api", apifeature.Routes(apiHandler, sessionMgr))

	// HTML pages, all behind CSRF protection.
	protect := csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"))
	r.Group(func(hr chi.Router) {
		hr.Use(protect)

		hr.Get("/", storesHandler.ServeList)
		hr.Mount("/stores", storesfeature.Routes(storesHandler, sessionMgr))
		hr.Mount("/store", storesfeature.ViewRoutes(storesHandler))
		hr.Mount("/add", storesfeature.AddRoutes(storesHandler, sessionMgr))
		hr.Mount("/top", storesfeature.TopRoutes(storesHandler))
		hr.Mount("/map", storesfeature.MapRoutes(storesHandler))
		hr.Mount("/hearts", storesfeature.HeartsRoutes(storesHandler, sessionMgr))

		hr.Mount("/tags", tagsfeature.Routes(tagsHandler))
		hr.Mount("/reviews", reviewsfeature.Routes(reviewsHandler, sessionMgr))

		hr.Mount("/login", accountfeature.LoginRoutes(accountHandler))
		hr.Mount("/register", accountfeature.RegisterRoutes(accountHandler))
		hr.Mount("/logout", accountfeature.LogoutRoutes(accountHandler, sessionMgr))
		hr.Mount("/account", accountfeature.Routes(accountHandler, sessionMgr))
	})

	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
