package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml（可选），再用环境变量覆盖
func Init() {
	once.Do(func() {
		cfg := &Config{
			Host:   "0.0.0.0",
			Port:   "8080",
			Prefix: "api",
			Mode:   ModeDebug,
			Kiosk: Kiosk{
				MaxPinAttempts: 5,
				LockoutSeconds: 300,
			},
		}

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(err)
			}
		}
		// 环境变量优先级最高，方便容器部署
		if err := envconfig.Process("", cfg); err != nil {
			panic(err)
		}
		instance = cfg
	})
}

func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
