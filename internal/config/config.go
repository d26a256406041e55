package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var cfgFile = "xiangqi/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	Addr        string `json:"addr"`
	WebDir      string `json:"web_dir"`
	AllowOrigin string `json:"allow_origin"`
	OpenBrowser bool   `json:"open_browser"`
	LogRequests bool   `json:"log_requests"`
}

var DefaultConfig = Config{
	Addr:        ":2888",
	WebDir:      "./web",
	OpenBrowser: true,
	LogRequests: true,
}

// InitConfig 读取 $XDG_CONFIG_HOME/xiangqi/config.json，没有就用默认值
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return &InvalidConfig{"addr must not be empty"}
	}
	return nil
}

// Path 配置文件应该放的位置（不会创建）
func Path() string {
	return filepath.Join(xdg.ConfigHome, cfgFile)
}

func readCfgFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", path, err)}
	}
	return nil
}
