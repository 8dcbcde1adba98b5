// Package config loads the edgeworth service and CLI configuration from YAML
// with defaults, environment overrides and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgeworth"
	"github.com/katalvlaran/edgeworth/contract"
	"github.com/katalvlaran/edgeworth/equilibrium"
	"github.com/katalvlaran/edgeworth/indifference"
	"github.com/katalvlaran/edgeworth/logger"
	"github.com/katalvlaran/edgeworth/mrs"
)

// Environment overrides.
const (
	EnvAddr    = "EDGEWORTH_ADDR"
	EnvWorkers = "EDGEWORTH_WORKERS"
	EnvLevel   = "LOG_LEVEL"
)

// maxSurfaceResolution bounds the O(n²) surface evaluation per request.
const maxSurfaceResolution = 500

// Config is the whole file: server, logging and solver sections.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging logger.Config `yaml:"logging"`
	Solver  SolverConfig  `yaml:"solver"`
}

// ServerConfig holds the HTTP listener, timeouts and request body limit.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	SolveTimeout    time.Duration `yaml:"solve_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// SolverConfig maps onto edgeworth.Options.
type SolverConfig struct {
	Workers           int                  `yaml:"workers"` // 0 ⇒ GOMAXPROCS
	MRSStep           float64              `yaml:"mrs_step"`
	SurfaceResolution int                  `yaml:"surface_resolution"`
	Indifference      indifference.Options `yaml:"indifference"`
	Contract          contract.Options     `yaml:"contract"`
	Equilibrium       equilibrium.Options  `yaml:"equilibrium"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	def := edgeworth.DefaultOptions()

	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			SolveTimeout:    30 * time.Second,
			MaxBodyBytes:    1 << 16,
		},
		Logging: logger.Config{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Solver: SolverConfig{
			MRSStep:           mrs.DefaultStep,
			SurfaceResolution: def.SurfaceResolution,
			Indifference:      def.Indifference,
			Contract:          def.Contract,
			Equilibrium:       def.Equilibrium,
		},
	}
}

// Load reads path over Default, applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Solver.Workers = n
	}

	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	if c.Server.SolveTimeout <= 0 {
		return fmt.Errorf("server.solve_timeout must be greater than 0")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be greater than 0")
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}

	s := c.Solver
	if s.Workers < 0 {
		return fmt.Errorf("solver.workers must not be negative")
	}
	if s.MRSStep < 0 {
		return fmt.Errorf("solver.mrs_step must not be negative")
	}
	if s.SurfaceResolution < 0 || s.SurfaceResolution > maxSurfaceResolution {
		return fmt.Errorf("solver.surface_resolution must be in [0, %d]", maxSurfaceResolution)
	}
	if err := s.Indifference.Validate(); err != nil {
		return fmt.Errorf("solver.indifference: %w", err)
	}
	if err := s.Contract.Validate(); err != nil {
		return fmt.Errorf("solver.contract: %w", err)
	}
	if err := s.Equilibrium.Validate(); err != nil {
		return fmt.Errorf("solver.equilibrium: %w", err)
	}

	return nil
}

// Options converts the solver section into edgeworth.Options, pushing the
// shared Workers and MRSStep knobs into both sweeps.
func (s SolverConfig) Options() edgeworth.Options {
	m := mrs.Options{Step: s.MRSStep}
	c, e := s.Contract, s.Equilibrium
	c.Workers, c.MRS = s.Workers, m
	e.Workers, e.MRS = s.Workers, m

	return edgeworth.Options{
		Indifference:      s.Indifference,
		Contract:          c,
		Equilibrium:       e,
		SurfaceResolution: s.SurfaceResolution,
	}
}
