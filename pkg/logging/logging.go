// Package logging builds the service logger and the echo access log.
package logging

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger at level (debug, info, warn or error).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

// RequestLogger writes one line per request. 5xx answers log at error level.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	log = log.Named("http")
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			if uid, ok := c.Get("uid").(string); ok {
				fields = append(fields, zap.String("uid", uid))
			}
			switch {
			case v.Status >= 500:
				log.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				log.Warn("request", append(fields, zap.Error(v.Error))...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}
