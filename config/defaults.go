package config

import (
	"github.com/spf13/viper"
)

func initDefaults() {
	viper.SetDefault("prompt", "\nAction> ")
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("perf.enabled", false)
}
