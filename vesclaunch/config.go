package main

import (
	"io/ioutil"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config is the optional vesclaunch TOML file.
//
//	log_level = "debug"
//
//	[packages]
//	vesc_interface = "/opt/vesc_interface/share/vesc_interface"
//
//	[arguments]
//	vehicle_param_file = "/etc/xray/vehicle.param.yaml"
type Config struct {
	LogLevel  string            `toml:"log_level"`
	Packages  map[string]string `toml:"packages"`
	Arguments map[string]string `toml:"arguments"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Packages:  map[string]string{},
		Arguments: map[string]string{},
	}
}

// LoadConfig reads path, or returns the defaults when path is empty.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Packages == nil {
		cfg.Packages = map[string]string{}
	}
	if cfg.Arguments == nil {
		cfg.Arguments = map[string]string{}
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	for pkg, share := range cfg.Packages {
		if pkg == "" || share == "" {
			return errors.Errorf("package override %q=%q needs a name and a path", pkg, share)
		}
	}
	for name := range cfg.Arguments {
		if name == "" {
			return errors.New("argument with an empty name")
		}
	}
	return nil
}
