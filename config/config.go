package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host       string     `envconfig:"HOST" mapstructure:"host"`
	Port       string     `envconfig:"PORT" mapstructure:"port"`
	Prefix     string     `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode       Mode       `envconfig:"MODE" mapstructure:"mode"`
	Database   Database   `envconfig:"DB" mapstructure:"database"`
	Redis      Redis      `envconfig:"REDIS" mapstructure:"redis"`
	Session    Session    `envconfig:"SESSION" mapstructure:"session"`
	Log        Log        `envconfig:"LOG" mapstructure:"log"`
	Sentry     Sentry     `envconfig:"SENTRY" mapstructure:"sentry"`
	OTel       OTel       `envconfig:"OTEL" mapstructure:"otel"`
	S3         S3         `envconfig:"S3" mapstructure:"s3"`
	Validation Validation `envconfig:"VALIDATION" mapstructure:"validation"`
}

type Driver string

const (
	DriverMysql    Driver = "mysql"
	DriverPostgres Driver = "postgres"
	DriverSqlite   Driver = "sqlite"
)

type Database struct {
	Driver   Driver `envconfig:"DRIVER" mapstructure:"driver"`
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Username string `envconfig:"USERNAME" mapstructure:"username"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DBName   string `envconfig:"NAME" mapstructure:"name"`
	// DSN 非空时直接使用，忽略上面的连接字段（sqlite 时为文件路径）
	DSN  string `envconfig:"DSN" mapstructure:"dsn"`
	Seed bool   `envconfig:"SEED" mapstructure:"seed"` // 启动时写入分类和演示账号
}

type Redis struct {
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DB       int    `envconfig:"DB" mapstructure:"db"`
}

type Session struct {
	Secret     string `envconfig:"SECRET" mapstructure:"secret"`
	MaxAge     int64  `envconfig:"MAX_AGE" mapstructure:"max_age"` // 秒
	CookieName string `envconfig:"COOKIE_NAME" mapstructure:"cookie_name"`
	Secure     bool   `envconfig:"SECURE" mapstructure:"secure"`
}

type Log struct {
	FilePath   string `envconfig:"FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string        `envconfig:"DSN" mapstructure:"dsn"`
	Environment string        `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64       `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
	Tracing     SentryTracing `envconfig:"TRACING" mapstructure:"tracing"`
}

type SentryTracing struct {
	DBSlowThresholdMs    int  `envconfig:"DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"`
	RedisSlowThresholdMs int  `envconfig:"REDIS_SLOW_THRESHOLD_MS" mapstructure:"redis_slow_threshold_ms"`
	TraceHTTPCalls       bool `envconfig:"TRACE_HTTP_CALLS" mapstructure:"trace_http_calls"`
}

type OTel struct {
	Enable      bool   `envconfig:"ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"AGENT_PORT" mapstructure:"agent_port"`
}

type S3 struct {
	Endpoint        string `envconfig:"ENDPOINT" mapstructure:"endpoint"`
	BaseURL         string `envconfig:"BASE_URL" mapstructure:"base_url"`
	Bucket          string `envconfig:"BUCKET" mapstructure:"bucket"`
	Region          string `envconfig:"REGION" mapstructure:"region"`
	AccessKey       string `envconfig:"ACCESS_KEY" mapstructure:"access_key"`
	SecretAccessKey string `envconfig:"SECRET_KEY" mapstructure:"secret_key"`
	Prefix          string `envconfig:"PREFIX" mapstructure:"prefix"`
	UsePathStyle    bool   `envconfig:"PATH_STYLE" mapstructure:"path_style"`
}

type Validation struct {
	// CheckImageReachable 创建/更新活动时是否用 HEAD 请求探测封面图片地址
	CheckImageReachable bool `envconfig:"CHECK_IMAGE_REACHABLE" mapstructure:"check_image_reachable"`
}
