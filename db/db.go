package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"aging_curve/config"
)

// 支持的 database/sql 驱动名
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

var (
	DB     *sql.DB // 数据库连接
	Driver string  // 当前驱动名
)

// Open 打开连接并 Ping；sqlite 限制为单连接，内存库在多连接下互不可见
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// InitWithConfig 使用配置初始化数据库连接池
func InitWithConfig(cfg *config.Config) error {
	conn, err := Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}

	if cfg.DB.Driver != DriverSQLite {
		// 从配置读取连接池参数，提供默认值保护
		maxOpenConns := cfg.DB.MaxOpenConns
		if maxOpenConns <= 0 {
			maxOpenConns = 50
		}
		maxIdleConns := cfg.DB.MaxIdleConns
		if maxIdleConns <= 0 {
			maxIdleConns = 10
		}
		connMaxLifetime := cfg.DB.ConnMaxLifetime
		if connMaxLifetime <= 0 {
			connMaxLifetime = 60
		}
		conn.SetMaxOpenConns(maxOpenConns)
		conn.SetMaxIdleConns(maxIdleConns)
		conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)
	}

	DB, Driver = conn, cfg.DB.Driver
	return nil
}

// Close 关闭全局连接
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

var schema = map[string][]string{
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS aging_results (
			result_id   VARCHAR(32)  NOT NULL PRIMARY KEY,
			profile_key VARCHAR(255) NOT NULL,
			user_input  TEXT         NOT NULL,
			result_data MEDIUMTEXT   NOT NULL,
			status      VARCHAR(16)  NOT NULL DEFAULT 'ACTIVE',
			created_at  DATETIME(6)  NOT NULL,
			deleted_at  DATETIME(6)  NULL,
			INDEX idx_aging_results_profile (profile_key, status, created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS aging_results (
			result_id   VARCHAR(32)  PRIMARY KEY,
			profile_key VARCHAR(255) NOT NULL,
			user_input  TEXT         NOT NULL,
			result_data TEXT         NOT NULL,
			status      VARCHAR(16)  NOT NULL DEFAULT 'ACTIVE',
			created_at  TIMESTAMPTZ  NOT NULL,
			deleted_at  TIMESTAMPTZ  NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_aging_results_profile ON aging_results (profile_key, status, created_at)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS aging_results (
			result_id   TEXT     PRIMARY KEY,
			profile_key TEXT     NOT NULL,
			user_input  TEXT     NOT NULL,
			result_data TEXT     NOT NULL,
			status      TEXT     NOT NULL DEFAULT 'ACTIVE',
			created_at  DATETIME NOT NULL,
			deleted_at  DATETIME NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_aging_results_profile ON aging_results (profile_key, status, created_at)`,
	},
}

// Migrate 建表（幂等）
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	stmts, ok := schema[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Rebind 把 ? 占位符改写为驱动需要的形式（postgres 用 $n）
func Rebind(driver, query string) string {
	return sqlx.Rebind(sqlx.BindType(driver), query)
}
