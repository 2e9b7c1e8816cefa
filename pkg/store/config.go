package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config interface {
	// BasePath is the directory preferences are stored in.
	BasePath() string
	Language() string
	Timezone() string
	// LogFile is empty when logs go to stderr only.
	LogFile() string
	LogLevel() string
}

// LoadConfig reads .onthisday.yaml from $ONTHISDAY_CONFIG_PATH or the working
// directory. Every key can be overridden with an ONTHISDAY_ environment
// variable. A missing config file is not an error.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.onthisday")
	viper.SetDefault("language", "en")
	viper.SetDefault("timezone", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_level", "info")
	viper.SetConfigName(".onthisday") // .yaml is implicit
	viper.SetEnvPrefix("ONTHISDAY")
	viper.AutomaticEnv()

	if override := os.Getenv("ONTHISDAY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(viper.GetString("log_file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log_file: %w", err)
	}

	return &fileConfig{
		Path:  path,
		Lang:  viper.GetString("language"),
		TZ:    viper.GetString("timezone"),
		Log:   logFile,
		Level: viper.GetString("log_level"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Lang  string `json:"language"`
	TZ    string `json:"timezone"`
	Log   string `json:"log_file"`
	Level string `json:"log_level"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Language() string { return f.Lang }
func (f *fileConfig) Timezone() string { return f.TZ }
func (f *fileConfig) LogFile() string  { return f.Log }
func (f *fileConfig) LogLevel() string { return f.Level }

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path  string
	Lang  string
	TZ    string
	Log   string
	Level string
}

func (s StaticConfig) BasePath() string { return s.Path }
func (s StaticConfig) Language() string { return s.Lang }
func (s StaticConfig) Timezone() string { return s.TZ }
func (s StaticConfig) LogFile() string  { return s.Log }
func (s StaticConfig) LogLevel() string { return s.Level }
