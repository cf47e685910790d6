package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hibeam-dev/chaski_client/pkg/errors"
)

type Config struct {
	Remote struct {
		Host    string
		Port    int
		Proto   string
		Timeout time.Duration
	}
	Engine struct {
		Name       string
		Binary     string `toml:",omitempty"`
		ConfigFile string
	}
	History struct {
		Path string `toml:",omitempty"`
		Keep int
	}
	Logging struct {
		Level   string
		LogFile string `toml:",omitempty"`
	}
}

func Load(path string) (Config, error) {
	var config Config

	// Defaults
	config.Remote.Port = 1194
	config.Remote.Proto = "udp"
	config.Remote.Timeout = 30 * time.Second
	config.Engine.Name = "openvpn"
	config.History.Keep = 1000

	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, fmt.Errorf("%w: %v", errors.ErrConfigLoad, err)
	}

	if config.Remote.Host == "" {
		return config, fmt.Errorf("%w: remote host is required", errors.ErrConfigLoad)
	}
	if config.Engine.ConfigFile == "" {
		return config, fmt.Errorf("%w: engine config file is required", errors.ErrConfigLoad)
	}
	if config.History.Keep < 0 {
		return config, fmt.Errorf("%w: history keep must not be negative", errors.ErrConfigLoad)
	}

	return config, nil
}
