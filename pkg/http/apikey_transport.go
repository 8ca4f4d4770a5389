package http

import (
	"context"
	"fmt"
	"net/http"
)

// KeyFunc resolves the API credential for an outbound request. It is
// called per request so a credential configured mid-process takes
// effect without rebuilding the client.
type KeyFunc func(ctx context.Context) (string, error)

type apiKeyTransport struct {
	param     string
	resolve   KeyFunc
	transport http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key, err := t.resolve(req.Context())
	if err != nil {
		return nil, fmt.Errorf("resolve api key: %w", err)
	}

	reqCopy := req.Clone(req.Context())
	q := reqCopy.URL.Query()
	q.Set(t.param, key)
	reqCopy.URL.RawQuery = q.Encode()

	return t.transport.RoundTrip(reqCopy)
}

// WithAPIKeyQuery appends the resolved credential as a query parameter
// on every outbound request, the authentication scheme the
// generative-language endpoint uses instead of an Authorization header.
func WithAPIKeyQuery(param string, resolve KeyFunc) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &apiKeyTransport{
			param:     param,
			resolve:   resolve,
			transport: rt,
		}
	})
}
