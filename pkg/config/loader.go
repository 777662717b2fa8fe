package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	configPath string
}

const DefaultConfigPath = "config.yaml"

func NewLoader(configPath string) *Loader {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return &Loader{configPath: configPath}
}

// Load 读取并校验配置文件, .toml 后缀按 TOML 解析, 其余按 YAML 解析
func (l *Loader) Load() (*Config, error) {
	c, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, NewReadError(l.configPath, err)
	}
	cfg := NewConfig()
	if strings.EqualFold(filepath.Ext(l.configPath), ".toml") {
		err = toml.Unmarshal(c, cfg)
	} else {
		err = yaml.Unmarshal(c, cfg)
	}
	if err != nil {
		return nil, NewParseError(l.configPath, err)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) getConfigPath() string {
	return l.configPath
}
