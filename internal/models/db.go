package models

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// DBOptions 数据库初始化选项
type DBOptions struct {
	Pool DBPoolConfig
	// SQLLog 为空时使用 gorm 默认输出
	SQLLog   *log.Logger
	LogLevel gormlogger.LogLevel
}

// NowUTC 统一以 UTC 记录时间戳
func NowUTC() time.Time {
	return time.Now().UTC()
}

// InitDB 初始化数据库连接
func InitDB(driver, dsn string, opts DBOptions) error {
	db, err := Open(driver, dsn, opts)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open 打开数据库连接，不修改全局 DB
func Open(driver, dsn string, opts DBOptions) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	level := opts.LogLevel
	if level == 0 {
		level = gormlogger.Warn
	}
	sqlLogger := gormlogger.Default.LogMode(level)
	if opts.SQLLog != nil {
		sqlLogger = gormlogger.New(opts.SQLLog, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  sqlLogger,
		NowFunc: NowUTC,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, opts.Pool)
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
		// glebarez/sqlite 是基于 modernc.org/sqlite 的纯 Go 驱动
		return sqlite.Open(withSQLiteForeignKeys(dsn)), nil
	case "postgres", "postgresql":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// withSQLiteForeignKeys 开启 sqlite 外键约束，post_tags 级联删除依赖它
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// AllModels 返回需要迁移的模型，顺序按外键依赖排列
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Tag{},
		&Post{},
		&PostTag{},
	}
}

// AutoMigrate 自动迁移所有数据库表
func AutoMigrate() error {
	return Migrate(DB)
}

// Migrate 对指定连接执行迁移
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return fmt.Errorf("setup post_tags join table: %w", err)
	}
	return db.AutoMigrate(AllModels()...)
}
