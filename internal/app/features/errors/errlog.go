// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs an error with request context and renders the matching
// error page in one call, so handlers stay to one line per failure path.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs at error level and renders the server-error page.
// logMsg is for operators; userMsg is what the visitor sees.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs at warn level and renders the bad-request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs at info level and renders the 404 page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, userMsg, backURL string) {
	e.log.Info(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	RenderNotFound(w, r, userMsg, backURL)
}
