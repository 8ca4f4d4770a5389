package http

import (
	"net/http"
	"net/url"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// context key for attaching the request payload
type payloadContextKey struct{}

type logTransport struct {
	redactParams []string
	transport    http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", redactURL(req.URL, t.redactParams)),
	}

	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.Int("payload_bytes", len(payload)))
	}

	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	return t.transport.RoundTrip(req)
}

// redactURL masks the named query parameters so credentials passed in
// the query string never reach the logs.
func redactURL(u *url.URL, params []string) string {
	if len(params) == 0 {
		return u.String()
	}

	clone := *u
	q := clone.Query()
	for _, p := range params {
		if q.Has(p) {
			q.Set(p, "REDACTED")
		}
	}
	clone.RawQuery = q.Encode()
	return clone.String()
}

// WithRequestLogging wraps the transport with debug logging of method,
// URL and payload size. Query parameters named in redactParams are
// masked in the logged URL.
func WithRequestLogging(redactParams ...string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			redactParams: redactParams,
			transport:    rt,
		}
	})
}
