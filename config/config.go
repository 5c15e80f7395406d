package config

import (
	"strings"

	"github.com/bwmarrin/lit"
	"github.com/spf13/viper"
)

type Config struct {
	Token    string `mapstructure:"TOKEN"`
	Prefix   string `mapstructure:"PREFIX"`
	Database string `mapstructure:"DATABASE"`
	LogLevel string `mapstructure:"LOGLEVEL"`
}

var Cfg Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("./data")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetDefault("PREFIX", "!")
	viper.SetDefault("DATABASE", "./data/advart.db")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	if err != nil {
		return
	}

	applyLogLevel(Cfg.LogLevel)
	return
}

// applyLogLevel maps the configured level onto lit. Unknown values keep the
// default (errors only).
func applyLogLevel(level string) {
	lit.LogLevel = lit.LogError

	switch strings.ToLower(level) {
	case "logwarning", "warning":
		lit.LogLevel = lit.LogWarning
	case "loginformational", "informational", "info":
		lit.LogLevel = lit.LogInformational
	case "logdebug", "debug":
		lit.LogLevel = lit.LogDebug
	}
}
