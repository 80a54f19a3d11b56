package responders

import (
	"context"
	"fmt"
	"github.com/breedlens/breedlens-frontend/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"net/http"
)

// WebStatusResponder reports classification service health as plain text.
type WebStatusResponder struct {
	ExposeErrors bool
}

func (r *WebStatusResponder) OnContextError(w http.ResponseWriter, err error) {
	r.writeError(w, http.StatusInternalServerError, err)
}

func (r *WebStatusResponder) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	l := ctxlogrus.Get(ctx)
	l.Warnf("Health check failed: %s", err)

	r.writeError(w, http.StatusServiceUnavailable, err)
}

func (r *WebStatusResponder) OnSuccess(w http.ResponseWriter, status *data.ServiceStatus) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "status: %s\n", status.Status)
	fmt.Fprintf(w, "model_loaded: %t\n", status.ModelLoaded)
}

func (r *WebStatusResponder) writeError(w http.ResponseWriter, code int, err error) {
	msg := http.StatusText(code)
	if r.ExposeErrors {
		msg = fmt.Sprintf("%s: %s", msg, err)
	}
	http.Error(w, msg, code)
}
