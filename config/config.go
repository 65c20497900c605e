// Package config loads the node configuration: defaults first, then an
// optional TOML file, then IGLOO_ prefixed environment variables.
package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/hermeznetwork/tracerr"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"github.com/virjilakrum/igloo/derivation"
	"github.com/virjilakrum/igloo/engine/executorclient"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/event"
	"github.com/virjilakrum/igloo/jsonrpc"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/metrics"
	"github.com/virjilakrum/igloo/pool"
	"github.com/virjilakrum/igloo/runner"
	"github.com/virjilakrum/igloo/state"
)

const (
	// FlagCfg is the flag for the configuration file.
	FlagCfg = "cfg"
	// FlagMigrations disables the automatic migrations on startup.
	FlagMigrations = "migrations"
)

// Config represents the full configuration of the node.
type Config struct {
	Log        log.Config
	Etherman   etherman.Config
	State      state.Config
	Derivation derivation.Config
	Runner     runner.Config
	Executor   executorclient.Config
	Pool       pool.Config
	EventLog   event.Config
	Metrics    metrics.Config
	JSONRPC    jsonrpc.Config
}

// Default parses the default configuration values.
func Default() (*Config, error) {
	var cfg Config
	viper.SetConfigType("toml")

	err := viper.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	err = viper.Unmarshal(&cfg, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &cfg, nil
}

// Load loads the configuration: defaults, then the file pointed at by the
// --cfg flag if any, then environment overrides.
func Load(ctx *cli.Context) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	configFilePath := ctx.String(FlagCfg)
	if configFilePath != "" {
		dirName, fileName := filepath.Split(configFilePath)

		fileExtension := strings.TrimPrefix(filepath.Ext(fileName), ".")
		fileNameWithoutExtension := strings.TrimSuffix(fileName, "."+fileExtension)

		viper.AddConfigPath(dirName)
		viper.SetConfigName(fileNameWithoutExtension)
		viper.SetConfigType(fileExtension)
	}

	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.SetEnvPrefix("IGLOO")

	err = viper.ReadInConfig()
	if err != nil {
		_, ok := err.(viper.ConfigFileNotFoundError)
		if !ok || configFilePath != "" {
			return nil, tracerr.Wrap(err)
		}
		log.Infof("config file not found, using defaults")
	}

	err = viper.Unmarshal(cfg, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return cfg, nil
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
