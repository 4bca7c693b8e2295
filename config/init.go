package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var current atomic.Pointer[Config]

// Default 返回开发环境可直接运行的默认配置
func Default() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "5000",
		Prefix: "api",
		Mode:   ModeDebug,
		Database: Database{
			Driver: DriverMysql,
			Host:   "127.0.0.1",
			Port:   "3306",
			DBName: "campus_connect",
		},
		Redis: Redis{Port: "6379"},
		Session: Session{
			Secret:     "campus-connect-secret-key",
			MaxAge:     7 * 24 * 3600,
			CookieName: "campus_session",
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		OTel: OTel{ServiceName: "campus-connect"},
	}
}

// Init 依次加载 .env、config.yaml 和 CAMPUS_ 前缀的环境变量，后者覆盖前者
func Init() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("read config file: %v", err)
		}
		log.Println("config.yaml not found, using defaults and environment")
	} else if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("decode config file: %v", err)
	}

	if err := envconfig.Process("CAMPUS", cfg); err != nil {
		log.Fatalf("read environment: %v", err)
	}

	if cfg.Session.Secret == Default().Session.Secret {
		log.Println("Warning: using default session secret, set CAMPUS_SESSION_SECRET in production")
	}
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	Set(cfg)
}

func Get() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	return Default()
}

// Set 替换全局配置，测试中用于注入
func Set(c *Config) {
	current.Store(c)
}
