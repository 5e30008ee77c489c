package configs

type ServiceConfig struct {
	Name     string `mapstructure:"name"`
	HttpPort string `mapstructure:"http_port"`
	// BasePath는 리버스 프록시 뒤에 배치될 때의 경로 접두사입니다. (예: /gov-bid-app)
	BasePath string `mapstructure:"base_path"`
}

// BackendConfig는 원격 REST 백엔드 접속 설정입니다.
type BackendConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

type SessionConfig struct {
	Secret    string `mapstructure:"secret"`
	ExpireMin int    `mapstructure:"expire_min"`
	Secure    bool   `mapstructure:"secure"`
}

// RedisConfig가 비어 있으면 쿠키 기반 세션 스토어를 사용합니다.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Tls      bool   `mapstructure:"tls"`
}

type LogsConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Development bool   `mapstructure:"development"`
}
