// internal/app/system/auth/flash.go
package auth

import (
	"encoding/gob"
	"net/http"

	"go.uber.org/zap"
)

// Flash kinds. Templates map these to banner styles.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashError   = "error"
)

// Flash is a one-shot notice carried in the session across a redirect.
// All user-facing failures surface this way; raw error payloads are
// reserved for the JSON API.
type Flash struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Flash queues a notice for the next rendered page.
func (sm *SessionManager) Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, _ := sm.store.Get(r, sm.name)
	sess.AddFlash(Flash{Kind: kind, Message: message})
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("saving flash failed", zap.Error(err))
	}
}

// TakeFlashes drains and returns any queued notices.
func (sm *SessionManager) TakeFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	sess, _ := sm.store.Get(r, sm.name)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("clearing flashes failed", zap.Error(err))
	}

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}
