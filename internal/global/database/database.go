package database

import (
	"campus-connect/config"
	"campus-connect/internal/global/sentry/tracing"
	"campus-connect/internal/model"
	"campus-connect/tools"
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func Init() {
	cfg := config.Get()
	db, err := Open(cfg.Database, cfg.Mode)
	tools.PanicOnErr(err)

	if tracing.IsEnabled() {
		tools.PanicOnErr(db.Use(tracing.NewGormTracingPlugin()))
	}

	tools.PanicOnErr(Migrate(db))
	if cfg.Database.Seed {
		tools.PanicOnErr(Seed(db))
	}
	DB = db
}

// Open 按驱动建立连接，所有时间戳统一使用 UTC
func Open(cfg config.Database, mode config.Mode) (*gorm.DB, error) {
	dialector, err := dialectorOf(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
	switch mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	default:
		gormConfig.Logger = logger.Discard
	}

	return gorm.Open(dialector, gormConfig)
}

func dialectorOf(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMysql, "":
		dsn := cfg.DSN
		if dsn == "" {
			c := mysqldriver.NewConfig()
			c.User = cfg.Username
			c.Passwd = cfg.Password
			c.Net = "tcp"
			c.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
			c.DBName = cfg.DBName
			c.ParseTime = true
			c.Loc = time.UTC
			c.Params = map[string]string{"charset": "utf8mb4"}
			dsn = c.FormatDSN()
		}
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBName)
		}
		return postgres.Open(dsn), nil
	case config.DriverSqlite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}
