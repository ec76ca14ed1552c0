package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SiteName     string `yaml:"siteName"`
	OutputDir    string `yaml:"outputDir"`
	CacheEnabled bool   `yaml:"cache"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
}

func defaultConfig() Config {
	return Config{
		SiteName:  "QazCut",
		OutputDir: "./cache",
	}
}

var LoadConfig = func(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig()
	}

	cfg := defaultConfig()
	yaml.Unmarshal(data, &cfg)

	if cfg.SiteName == "" {
		cfg.SiteName = "QazCut"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./cache"
	}

	return cfg
}
