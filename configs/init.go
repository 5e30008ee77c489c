package configs

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Tconfigs는 서비스 전체 설정의 루트입니다.
type Tconfigs struct {
	Service ServiceConfig `mapstructure:"service"`
	Backend BackendConfig `mapstructure:"backend"`
	Session SessionConfig `mapstructure:"session"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logs    LogsConfig    `mapstructure:"logs"`
}

var Configs Tconfigs

// Init은 설정 파일을 로드하고 로거를 초기화합니다.
// 경로 우선순위: 인자 > CONFIG_PATH 환경변수 > ./configs/{env} > ./configs/example
func Init(configPath *string) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("govbid")

	// 환경 변수 바인딩 (예: GOVBID_BACKEND_BASE_URL)
	v.SetEnvPrefix("GOVBID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != nil && *configPath != "" {
		v.SetConfigFile(*configPath)
	} else if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		v.SetConfigFile(envPath)
	} else {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		v.AddConfigPath("configs/" + env)
		v.AddConfigPath("configs/example")
	}

	if err := v.ReadInConfig(); err != nil {
		os.Stderr.WriteString("Error reading config file: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := v.Unmarshal(&Configs); err != nil {
		os.Stderr.WriteString("Error parsing config file: " + err.Error() + "\n")
		os.Exit(1)
	}

	applyDefaults()
	InitLogger()

	Logger.Info("Configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("backend_base_url", Configs.Backend.BaseURL),
	)
}

func applyDefaults() {
	if Configs.Service.HttpPort == "" {
		Configs.Service.HttpPort = "8080"
	}
	if Configs.Backend.TimeoutSec <= 0 {
		Configs.Backend.TimeoutSec = 10
	}
	if Configs.Session.ExpireMin <= 0 {
		Configs.Session.ExpireMin = 60
	}
	if Configs.Logs.Level == "" {
		Configs.Logs.Level = "info"
	}
}
