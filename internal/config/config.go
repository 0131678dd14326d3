package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

type ReportConfig struct {
	Dir    string `mapstructure:"dir"`
	Recent int    `mapstructure:"recent"`
}

type AppSubConfig struct {
	PageSize  int `mapstructure:"page_size"`
	PinMinLen int `mapstructure:"pin_min_len"`
	PinMaxLen int `mapstructure:"pin_max_len"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Report   ReportConfig   `mapstructure:"report"`
	App      AppSubConfig   `mapstructure:"app"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. SL_DATABASE_PATH=/tmp/erp.db
		v.SetEnvPrefix("SL") // shop ledger
		v.AutomaticEnv()

		// sane defaults so a missing config.yaml is still workable
		v.SetDefault("database.path", "data/erp.db")
		v.SetDefault("log.file", "logs/app.log")
		v.SetDefault("log.level", "info")
		v.SetDefault("backup.dir", "Backups")
		v.SetDefault("report.dir", ".")
		v.SetDefault("report.recent", 5)
		v.SetDefault("app.page_size", 20)
		v.SetDefault("app.pin_min_len", 4)
		v.SetDefault("app.pin_max_len", 8)

		if err = v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				err = fmt.Errorf("read config: %w", err)
				return
			}
			err = nil
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
