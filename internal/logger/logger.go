// Package logger configures application logging and observability.
//
// It builds the zerolog root logger (console output in local, JSON
// elsewhere), owns the optional New Relic application instance, and
// provides the adapters that connect zerolog to pgx query tracing and to
// New Relic trace metadata.
package logger

import (
	"os"
	"strings"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/prasdika/storefront/internal/config"
)

// LoggerService owns the New Relic application instance. When New Relic is
// not configured the service still exists but GetApplication returns nil,
// and every integration point degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes New Relic from config.
//
// An empty license key is not an error; it simply disables the agent.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	if cfg.Observability == nil || cfg.Observability.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	nr := cfg.Observability.NewRelic

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, err
	}

	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application, or nil when the agent
// is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// New builds the application root logger.
//
// Format follows config: "console" gives human-readable output for local
// development, anything else emits JSON. When New Relic log forwarding is
// active, the JSON stream is wrapped with the zerologWriter integration so
// log lines carry trace linking metadata and are forwarded by the agent.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	level := ParseLevel(cfg.Observability.GetLogLevel())

	var logger zerolog.Logger
	if cfg.Observability.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	} else {
		var out = os.Stdout
		if app := loggerService.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
			writer := zerologWriter.New(out, app)
			logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
			return &logger
		}
		logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	return &logger
}

// ParseLevel maps a config level string onto a zerolog level. Unknown
// values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTraceContext returns a child logger carrying the New Relic trace and
// span ids of the given transaction, so log lines can be correlated with
// distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

// NewPgxLogger builds the logger used for SQL query logging in local
// environments. Console output on purpose: query logs are for humans.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "pgx").Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx tracelog
// verbosity. Debug logging includes every query; otherwise only warnings
// and errors surface.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelWarn
	}
}
