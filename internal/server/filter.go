package server

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// AccessLogFilter logs every HTTP exchange, including the ones that never
// reach a route such as unknown paths.
func AccessLogFilter(logger log.Logger) khttp.FilterFunc {
	l := log.NewHelper(log.With(logger, "module", "http/access"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			level := log.LevelInfo
			if m.Code >= http.StatusInternalServerError {
				level = log.LevelError
			}
			l.Log(level,
				"method", r.Method,
				"path", r.URL.Path,
				"status", m.Code,
				"latency", m.Duration.Seconds(),
				"bytes", m.Written,
			)
		})
	}
}
