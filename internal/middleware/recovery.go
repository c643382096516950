package middleware

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainingadventure/internal/telemetry/metrics"
	"github.com/2beens/trainingadventure/pkg"
)

const panicNotice = "something went wrong, the session can continue"

// PanicRecovery turns a handler panic into a 500 notice, so one broken
// request never takes the service down.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Errorf("panic serving [%s] %s: %v\n%s", req.Method, req.URL.Path, rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteNotice(w, panicNotice, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
