package api

import (
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// instrument logs every request and its outcome at debug level.
func instrument(rc *resty.Client, log *slog.Logger) {
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		log.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
		return nil
	})
	rc.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		log.DebugContext(res.Request.Context(), "end request",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"bytes", len(res.Body()),
			"elapsed", res.Time().Round(time.Millisecond),
		)
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		log.WarnContext(req.Context(), "request failed", "method", req.Method, "url", req.URL, "err", err)
	})
}
