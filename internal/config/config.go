package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      string `yaml:"port"`
	DBDSN     string `yaml:"dbDsn"`
	StateName string `yaml:"stateName"`
	LogFile   string `yaml:"logFile"`
}

func defaults() Config {
	return Config{
		Port:      "8080",
		DBDSN:     "gpstore.db", // sqlite file in project root
		StateName: "innomakers-store",
		LogFile:   "./gpstore.log",
	}
}

// Load builds the config from defaults, an optional YAML file named by
// CONFIG_FILE, then environment variable overrides, in that order.
func Load() Config {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			log.Printf("[config] could not load %s: %v", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("STATE_NAME"); v != "" {
		cfg.StateName = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	log.Printf("[config] PORT=%s DB_DSN=%s STATE_NAME=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.StateName, cfg.LogFile)
	return cfg
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
