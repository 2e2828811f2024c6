package configuration

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"

	"github.com/HazyCorp/statscalc/cmd/statscalc/cmd/globflags"
	"github.com/HazyCorp/statscalc/internal/apiserver"
	"github.com/HazyCorp/statscalc/internal/metricsrv"
	"github.com/HazyCorp/statscalc/internal/registry"
	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
)

type Config struct {
	fx.Out

	Logging  hzlog.Config     `json:"logging" yaml:"logging"`
	Serve    apiserver.Config `json:"serve" yaml:"serve"`
	Metrics  metricsrv.Config `json:"metrics" yaml:"metrics"`
	Registry registry.Config  `json:"registry" yaml:"registry"`
}

func defaultConfig() *Config {
	return &Config{
		Logging: hzlog.DefaultConfig(),
		Serve: apiserver.Config{
			Port: 13337,
		},
		Metrics: metricsrv.Config{
			Port: 14448,
		},
		Registry: registry.DefaultConfig(),
	}
}

func Read() (Config, error) {
	confPath := globflags.ConfigPath

	if confPath == "" {
		return *defaultConfig(), nil
	}

	data, err := os.ReadFile(confPath)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read config at %s", confPath)
	}

	data = []byte(os.ExpandEnv(string(data)))

	c := defaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return Config{}, errors.Wrap(err, "cannot parse config as yaml")
	}

	if err := Validate(c); err != nil {
		return Config{}, errors.Wrap(err, "invalid config provided")
	}

	return *c, nil
}

func Validate(c *Config) error {
	if c.Serve.Port == 0 {
		return errors.Errorf("config.serve.port must be provided")
	}
	if c.Metrics.Port == 0 {
		return errors.Errorf("config.metrics.port must be provided")
	}

	switch c.Registry.HandleMode {
	case "", registry.HandleModeCompat, registry.HandleModeMonotonic:
	default:
		return errors.Errorf(
			"config.registry.handle_mode must be one of [%s, %s]",
			registry.HandleModeCompat, registry.HandleModeMonotonic,
		)
	}

	return nil
}
