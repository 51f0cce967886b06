package http

import (
	"errors"
	"net/http"

	"laundry/api"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const BasePath = "/api/v1"

type RouterConfig struct {
	Identity *Identity
	Logger   *zap.Logger
	Metrics  *metrics.HTTP
	Gatherer prometheus.Gatherer
}

// NewRouter wires the public routes. /health, /metrics, /openapi.yaml and
// /swagger/* are open; everything under BasePath needs a bearer token and
// passes request validation first.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	if server == nil || cfg.Identity == nil || cfg.Logger == nil {
		return nil, errors.New("router needs a server, an identity and a logger")
	}

	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator := RequestValidator(doc, BasePath)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	group := e.Group(BasePath, cfg.Identity.Middleware(), validator)
	servers.RegisterHandlers(group, server)

	return e, nil
}

func requestLogger(l *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Int64("latency_ms", v.Latency.Milliseconds()),
				zap.String("client_ip", v.RemoteIP),
			}
			if v.Error != nil {
				l.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			l.Info("request", fields...)
			return nil
		},
	})
}
