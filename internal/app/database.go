package app

import (
	"fmt"

	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/logger"
	"github.com/inkpost/internal/models"

	gormlogger "gorm.io/gorm/logger"
)

// InitDatabase 按配置打开全局数据库连接并执行迁移
func InitDatabase(cfg *config.Config) error {
	driver, dsn, err := cfg.Database.Resolve()
	if err != nil {
		return err
	}

	opts := models.DBOptions{
		Pool: models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		},
		// SQL 日志统一写入 zap
		SQLLog: logger.StdLogger(),
	}
	if cfg.Log.SQL {
		opts.LogLevel = gormlogger.Info
	}
	if driver == config.DriverPostgres && opts.Pool.MaxOpenConns <= 1 {
		// 单连接仅适用于 SQLite
		opts.Pool.MaxOpenConns = 10
		opts.Pool.MaxIdleConns = 5
	}

	if err := models.InitDB(driver, dsn, opts); err != nil {
		return fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Infow("database_ready", "driver", driver)
	return nil
}
