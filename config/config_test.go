package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/edgeworth"
	"github.com/katalvlaran/edgeworth/config"
	"github.com/katalvlaran/edgeworth/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvAddr, config.EnvWorkers, config.EnvLevel} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edgeworth.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	opts := cfg.Solver.Options()
	def := edgeworth.DefaultOptions()
	assert.Equal(t, def.Indifference, opts.Indifference)
	assert.Equal(t, def.SurfaceResolution, opts.SurfaceResolution)
	assert.Equal(t, def.Contract.Points, opts.Contract.Points)
	assert.Equal(t, def.Equilibrium.Prices, opts.Equilibrium.Prices)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
server:
  addr: ":9090"
  solve_timeout: 5s
logging:
  format: text
solver:
  workers: 4
  mrs_step: 0.0001
  contract:
    points: 50
    smooth: false
  equilibrium:
    tolerance: 0.2
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.SolveTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout, "untouched keys keep defaults")
	assert.Equal(t, "text", cfg.Logging.Format)

	opts := cfg.Solver.Options()
	assert.Equal(t, 50, opts.Contract.Points)
	assert.False(t, opts.Contract.Smooth)
	assert.Equal(t, contract.DefaultOptions().ScanSamples, opts.Contract.ScanSamples)
	assert.Equal(t, 4, opts.Contract.Workers)
	assert.Equal(t, 4, opts.Equilibrium.Workers)
	assert.Equal(t, 1e-4, opts.Contract.MRS.Step)
	assert.Equal(t, 1e-4, opts.Equilibrium.MRS.Step)
	assert.Equal(t, 0.2, opts.Equilibrium.Tolerance)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAddr, "127.0.0.1:7000")
	t.Setenv(config.EnvLevel, "debug")
	t.Setenv(config.EnvWorkers, "2")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Solver.Workers)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "server: [unclosed"))
	assert.Error(t, err)

	for name, body := range map[string]string{
		"timeout":    "server:\n  solve_timeout: 0s\n",
		"body":       "server:\n  max_body_bytes: 0\n",
		"format":     "logging:\n  format: xml\n",
		"workers":    "solver:\n  workers: -1\n",
		"surface":    "solver:\n  surface_resolution: 100000\n",
		"curves":     "solver:\n  indifference:\n    num_curves: 0\n",
		"contract":   "solver:\n  contract:\n    tolerance: 0\n",
		"equilibria": "solver:\n  equilibrium:\n    prices: 0\n",
	} {
		_, err := config.Load(writeFile(t, body))
		assert.Error(t, err, name)
	}
}
