package observability

import (
	"context"
	"errors"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/match-ingestion/internal/config"
	"github.com/riskibarqy/match-ingestion/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// Telemetry owns the tracing exporter and the profiler of one ingest run.
type Telemetry struct {
	stopTracing   func(context.Context) error
	stopProfiling func() error
}

// Start enables Uptrace tracing and Pyroscope profiling as configured. Both are optional;
// a disabled backend contributes a no-op to Shutdown.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}

	t := &Telemetry{
		stopTracing:   func(context.Context) error { return nil },
		stopProfiling: func() error { return nil },
	}

	switch {
	case !cfg.UptraceEnabled:
		logger.Debug("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
	default:
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(cfg.UptraceDSN),
			uptrace.WithServiceName(cfg.ServiceName),
			uptrace.WithServiceVersion(cfg.ServiceVersion),
			uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		)
		t.stopTracing = uptrace.Shutdown
		logger.Info("uptrace enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)
	}

	if !cfg.PyroscopeEnabled {
		logger.Debug("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return t, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockDuration,
		},
	})
	if err != nil {
		_ = t.stopTracing(context.Background())
		return nil, err
	}
	t.stopProfiling = profiler.Stop
	logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)

	return t, nil
}

// Shutdown flushes pending spans and stops the profiler.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return errors.Join(t.stopProfiling(), t.stopTracing(ctx))
}
