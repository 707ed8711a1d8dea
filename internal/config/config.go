// Package config loads hash table settings from a YAML file and HASHMAP_*
// environment variables.
package config

import (
	"strings"

	"github.com/efficientgo/core/errors"
	"github.com/spf13/viper"

	hashmap "github.com/kobeHub/Hash-map"
	"github.com/kobeHub/Hash-map/prime"
)

type Config struct {
	Table struct {
		InitialCapacity int     `mapstructure:"initial_capacity"`
		MinCapacity     int     `mapstructure:"min_capacity"`
		MaxCapacity     int     `mapstructure:"max_capacity"`
		GrowLoad        float64 `mapstructure:"grow_load"`
		ShrinkLoad      float64 `mapstructure:"shrink_load"`
		Hasher          string  `mapstructure:"hasher"`
		// SieveLimit > 0 answers prime queries up to the limit from a
		// precomputed sieve instead of trial division.
		SieveLimit int `mapstructure:"sieve_limit"`
	} `mapstructure:"table"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("hashmap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("table.initial_capacity", hashmap.DefaultCapacity)
	v.SetDefault("table.min_capacity", hashmap.DefaultMinCapacity)
	v.SetDefault("table.max_capacity", 0)
	v.SetDefault("table.grow_load", hashmap.DefaultGrowLoad)
	v.SetDefault("table.shrink_load", hashmap.DefaultShrinkLoad)
	v.SetDefault("table.hasher", "polynomial")
	v.SetDefault("table.sieve_limit", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	return v
}

// Default returns the configuration used when no file is given. Values are
// not validated here; hashmap.New rejects unusable ones.
func Default() (*Config, error) {
	conf := &Config{}
	if err := newViper().Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "unable to decode defaults")
	}
	return conf, nil
}

// Load reads configName.yml from configPath. A missing file falls back to
// the defaults; environment overrides apply either way.
func Load(configPath, configName string) (*Config, error) {
	v := newViper()
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrapf(err, "reading config %s", configName)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "unable to decode into config struct")
	}
	return conf, nil
}

// Options converts the table section into hashmap options.
func (c *Config) Options() []hashmap.Option {
	t := c.Table
	opts := []hashmap.Option{
		hashmap.WithInitialCapacity(t.InitialCapacity),
		hashmap.WithMinCapacity(t.MinCapacity),
		hashmap.WithMaxCapacity(t.MaxCapacity),
		hashmap.WithWatermarks(t.ShrinkLoad, t.GrowLoad),
		hashmap.WithHasherName(t.Hasher),
	}
	if t.SieveLimit > 0 {
		opts = append(opts, hashmap.WithOracle(prime.NewSieve(t.SieveLimit)))
	}
	return opts
}
