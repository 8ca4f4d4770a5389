package common

import (
	"github.com/ideasage/backend/internal/config"
	pkgHTTP "github.com/ideasage/backend/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds the shared JSON connector from an HTTP client
// config, with request logging installed. Extra options (auth
// transports and the like) are appended after logging so the logger
// sees the final request.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, extra ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging("key"),
	}
	opts = append(opts, extra...)

	return pkgHTTP.NewConnector(connCfg, opts...)
}
