package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST"`
	Port   string `envconfig:"PORT"`
	Domain string `envconfig:"DOMAIN"`
	Prefix string `envconfig:"PREFIX"`
	Mode   Mode   `envconfig:"MODE"`
	Mysql  Mysql
	Redis  Redis
	JWT    JWT
	Log    Log `mapstructure:"Log"`
	Sentry Sentry
	Kiosk  Kiosk
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `envconfig:"DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
	Tracing     Tracing
}

type Tracing struct {
	DBSlowThresholdMs    int  `envconfig:"DB_SLOW_MS" mapstructure:"db_slow_ms"`       // 慢查询阈值（毫秒），0 表示全部记录
	RedisSlowThresholdMs int  `envconfig:"REDIS_SLOW_MS" mapstructure:"redis_slow_ms"` // Redis 慢操作阈值（毫秒）
	TraceHTTPCalls       bool `envconfig:"HTTP" mapstructure:"http"`                   // 是否追踪出站 HTTP 请求
}

type Kiosk struct {
	WebhookURL     string `envconfig:"WEBHOOK_URL" mapstructure:"webhook_url"`           // 接送签到事件通知地址，留空则不通知
	MaxPinAttempts int    `envconfig:"MAX_PIN_ATTEMPTS" mapstructure:"max_pin_attempts"` // 同一终端 PIN 连续错误上限
	LockoutSeconds int    `envconfig:"LOCKOUT_SECONDS" mapstructure:"lockout_seconds"`   // 锁定时长（秒）
}
