package config_test

import (
	"flag"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/virjilakrum/igloo/config"
	"github.com/virjilakrum/igloo/pool"
)

func loadWithFlag(t *testing.T, cfgPath string) *config.Config {
	t.Helper()

	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.String(config.FlagCfg, cfgPath, "")
	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)

	cfg, err := config.Load(ctx)
	require.NoError(t, err)
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, uint64(64), cfg.Derivation.StalenessHorizon)
	assert.Equal(t, 4, cfg.Derivation.FrameFetchWorkers)
	assert.Equal(t, uint64(0), cfg.Runner.GenesisBlockNumber)
	assert.Equal(t, 2*time.Second, cfg.Runner.AdvanceInterval.Duration)
	assert.Equal(t, pool.PolicyFIFO, cfg.Pool.Policy)
	assert.True(t, cfg.Pool.DedupByHash)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "0.0.0.0", cfg.JSONRPC.Host)
	assert.Equal(t, 60*time.Second, cfg.JSONRPC.ReadTimeout.Duration)
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
[Derivation]
StalenessHorizon = 128

[Runner]
GenesisBlockNumber = 42
AdvanceInterval = "500ms"

[Pool]
Policy = "feepriority"
`
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/cfg/node.toml", []byte(content), 0600))
	viper.SetFs(memFs)
	t.Cleanup(func() { viper.Reset() })

	cfg := loadWithFlag(t, "/cfg/node.toml")

	assert.Equal(t, uint64(128), cfg.Derivation.StalenessHorizon)
	assert.Equal(t, uint64(42), cfg.Runner.GenesisBlockNumber)
	assert.Equal(t, 500*time.Millisecond, cfg.Runner.AdvanceInterval.Duration)
	assert.Equal(t, pool.PolicyFeePriority, cfg.Pool.Policy)

	// untouched sections keep their defaults
	assert.Equal(t, 4, cfg.Derivation.FrameFetchWorkers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("IGLOO_DERIVATION_STALENESSHORIZON", "32")
	t.Setenv("IGLOO_RUNNER_ADVANCEINTERVAL", "10s")
	t.Setenv("IGLOO_LOG_LEVEL", "debug")

	cfg := loadWithFlag(t, "")

	assert.Equal(t, uint64(32), cfg.Derivation.StalenessHorizon)
	assert.Equal(t, 10*time.Second, cfg.Runner.AdvanceInterval.Duration)
	assert.Equal(t, "debug", cfg.Log.Level)
}
