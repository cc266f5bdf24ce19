package minirt

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/minirt/internal/env"
	"github.com/viant/minirt/workload"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the runtime configuration.
// Keys missing from a loaded document keep their DefaultConfig values.
type Config struct {
	Executor  ExecutorConfig  `json:"executor" yaml:"executor"`
	Log       LogConfig       `json:"log" yaml:"log"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
	Metrics   MetricsConfig   `json:"metrics" yaml:"metrics"`
	Workloads workload.Config `json:"workloads" yaml:"workloads"`
}

type ExecutorConfig struct {
	// QueueCapacity is the number of ready queue slots allocated up front.
	QueueCapacity int `json:"queueCapacity" yaml:"queueCapacity"`
	// YieldBetweenPasses yields the goroutine after every drain pass.
	YieldBetweenPasses bool `json:"yieldBetweenPasses" yaml:"yieldBetweenPasses"`
}

type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Output is the file traces are written to; empty means stdout.
	Output string `json:"output" yaml:"output"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Executor: ExecutorConfig{
			QueueCapacity:      16,
			YieldBetweenPasses: true,
		},
		Log:       LogConfig{Level: "info"},
		Metrics:   MetricsConfig{Namespace: "minirt"},
		Workloads: workload.DefaultConfig(),
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Executor.QueueCapacity <= 0 {
		return fmt.Errorf("executor.queueCapacity must be > 0")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required when metrics are enabled")
	}
	return c.Workloads.Validate()
}

// LoadConfig reads a YAML document from URL (any scheme supported by afs),
// expands ${env.KEY} references and decodes it over DefaultConfig.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	return loadConfig(ctx, afs.New(), URL)
}

func loadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %s: %w", URL, err)
	}
	return DecodeConfig(data)
}

// DecodeConfig decodes a YAML document over DefaultConfig and validates it.
func DecodeConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(env.Expand(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// NewLogger builds a zap logger for c.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	if c.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
