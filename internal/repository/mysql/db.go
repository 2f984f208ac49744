package mysql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"UAsync_Community/internal/config"
	"UAsync_Community/internal/model"

	"github.com/glebarez/sqlite"
	gomysql "github.com/go-sql-driver/mysql"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect 按 DB_TYPE 打开连接池；进程启动时调用一次，结果注入各 repository
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "mysql":
		dialector = mysqldriver.Open(mysqlDSN(cfg))
	case "postgres":
		dialector = postgres.Open(postgresDSN(cfg))
	case "sqlite":
		// DBName 即文件路径，测试中使用 ":memory:"
		dialector = sqlite.Open(cfg.DBName)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	// 至少保留一个空闲连接，内存 sqlite 在连接关闭后数据即丢失
	sqlDB.SetMaxIdleConns(max(1, cfg.DBMaxOpenConns/2))
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("mysql: connected", "type", cfg.DBType, "database", cfg.DBName, "max_open_conns", cfg.DBMaxOpenConns)
	return db, nil
}

// mysqlDSN 由驱动拼接 DSN，密码中的特殊字符无需手工转义
func mysqlDSN(cfg *config.Config) string {
	c := gomysql.NewConfig()
	c.User = cfg.DBUser
	c.Passwd = cfg.DBPassword
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	c.DBName = cfg.DBName
	c.ParseTime = true
	c.Loc = time.Local
	// UPDATE 返回匹配行数，资料未变化时不会被误判为不存在
	c.ClientFoundRows = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

// postgresDSN URL 形式，用户名和密码经过转义
func postgresDSN(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     net.JoinHostPort(cfg.DBHost, cfg.DBPort),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": {"disable"}, "TimeZone": {"UTC"}}.Encode(),
	}
	return u.String()
}

// AutoMigrate 自动建表（开发阶段使用）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.MainGroup{},
		&model.SubGroup{},
		&model.SubscribedMainGroup{},
		&model.SubscribedSubGroup{},
		&model.Post{},
		&model.Event{},
		&model.SubscriptionOutbox{},
	)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 关闭连接池（在程序退出时调用）
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
