package telemetry

import (
	"fmt"
	"os"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/infrastructure/config"
)

// Profiler manages the Pyroscope continuous profiler
type Profiler struct {
	profiler *pyroscope.Profiler
	log      *zap.Logger
}

// NewProfiler starts continuous profiling when enabled
func NewProfiler(cfg config.TelemetryConfig, log *zap.Logger) (*Profiler, error) {
	p := &Profiler{log: log}
	if !cfg.ProfilerEnabled {
		return p, nil
	}
	if cfg.ProfilerAddr == "" {
		return nil, fmt.Errorf("telemetry.profiler_addr is required when profiling is enabled")
	}

	tags := map[string]string{}
	if hostname, err := os.Hostname(); err == nil {
		tags["hostname"] = hostname
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.ServiceName,
		ServerAddress:   cfg.ProfilerAddr,
		Logger:          &pyroscopeLogger{log: log.Named("pyroscope")},
		Tags:            tags,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("start profiler: %w", err)
	}
	p.profiler = profiler

	log.Info("profiler started", zap.String("server", cfg.ProfilerAddr))
	return p, nil
}

// Stop flushes and stops the profiler
func (p *Profiler) Stop() error {
	if p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}

type pyroscopeLogger struct {
	log *zap.Logger
}

func (l *pyroscopeLogger) Infof(format string, args ...any) {
	l.log.Sugar().Infof(format, args...)
}

func (l *pyroscopeLogger) Debugf(format string, args ...any) {
	l.log.Sugar().Debugf(format, args...)
}

func (l *pyroscopeLogger) Errorf(format string, args ...any) {
	l.log.Sugar().Errorf(format, args...)
}
