package config

import (
	"fmt"
	"strings"

	"github.com/inkpost/internal/logger"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultSecretKey 开发环境默认密钥，生产环境必须覆盖
	DefaultSecretKey = "dev-secret-key-change-this"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`      // debug / release
	BasePath string `mapstructure:"base_path"` // 接口前缀，默认 /api
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
	Level      string `mapstructure:"level"`  // 为空时按 server.mode 推导
	Stdout     bool   `mapstructure:"stdout"` // release 模式同时输出到标准输出
	SQL        bool   `mapstructure:"sql"`    // 是否输出 SQL 日志
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
		Level:      c.Level,
		Stdout:     c.Stdout,
	}
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver string             `mapstructure:"driver"` // 数据库驱动（sqlite/postgres）
	DSN    string             `mapstructure:"dsn"`    // 数据库连接串
	URL    string             `mapstructure:"url"`    // DATABASE_URL，非空时优先于 driver/dsn
	Pool   DatabasePoolConfig `mapstructure:"pool"`
}

// Resolve 解析最终使用的驱动与连接串
func (c DatabaseConfig) Resolve() (driver, dsn string, err error) {
	raw := strings.TrimSpace(c.URL)
	if raw == "" {
		driver = strings.ToLower(strings.TrimSpace(c.Driver))
		if driver == "" {
			driver = DriverSQLite
		}
		dsn = strings.TrimSpace(c.DSN)
		if dsn == "" {
			return "", "", fmt.Errorf("database dsn is empty for driver %s", driver)
		}
		return driver, dsn, nil
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(lower, "sqlite:///"):
		path := raw[len("sqlite:///"):]
		if path == "" {
			return "", "", fmt.Errorf("database url %q has no sqlite path", raw)
		}
		return DriverSQLite, path, nil
	case strings.Contains(raw, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme: %s", raw[:strings.Index(raw, "://")])
	default:
		return DriverSQLite, raw, nil
	}
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// envAliases 兼容部署平台常用的环境变量名
var envAliases = map[string]string{
	"security.secret_key": "SECRET_KEY",
	"database.url":        "DATABASE_URL",
	"server.port":         "PORT",
}

// Load 从 config.yml 与环境变量加载配置
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")     // 从当前目录查找
	v.AddConfigPath("./etc") // etc 文件夹
	v.AddConfigPath("../")   // 如果从 cmd/server 运行

	if err := v.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", v.ConfigFileUsed())
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}
	return cfg
}

// LoadFrom 在给定 viper 实例上应用默认值与环境变量后解析配置
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// 环境变量支持
	v.AutomaticEnv()                                   // 自动读取环境变量
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // 将 . 替换为 _ (例如 server.port -> SERVER_PORT)
	for key, env := range envAliases {
		// 先绑定规范名，别名作为后备
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Server.BasePath = normalizeBasePath(cfg.Server.BasePath)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("log.level", "")
	v.SetDefault("log.stdout", false)
	v.SetDefault("log.sql", false)
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "./app.db")
	v.SetDefault("database.url", "")
	v.SetDefault("database.pool.max_open_conns", 1)
	v.SetDefault("database.pool.max_idle_conns", 1)
	v.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	v.SetDefault("database.pool.conn_max_idle_time_seconds", 0)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Cache-Control",
		"X-Requested-With",
		"X-Request-ID",
	})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 600)
	v.SetDefault("security.secret_key", DefaultSecretKey)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func normalizeBasePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(path, "/")
}

// IsWeakSecret 判断密钥是否过短或仍为占位值
func IsWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	for _, marker := range []string{"change-me", "change-this", "change-in-production", "your-secret-key"} {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
